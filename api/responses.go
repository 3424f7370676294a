package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/gin-gonic/gin"
)

const msgSomethingWrong = "Something went wrong!"

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {message, error}. Errors that did not come through a
// service boundary are reported as internal with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.Errorf(domain.KindInternal, fallback, err)
	}
	_ = c.Error(err)
	c.JSON(statusFor(de.Kind), errorResponse{Message: de.Message, Error: de.Detail()})
}

// respondBindError reports a request body that could not be decoded.
func respondBindError(c *gin.Context, err error, message string) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.JSON(http.StatusBadRequest, errorResponse{Message: message, Error: err.Error()})
}
