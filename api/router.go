package api

import (
	"net/http"

	"github.com/Domenick1991/airticket/internal/metrics"
	"github.com/Domenick1991/airticket/internal/service/account"
	"github.com/Domenick1991/airticket/internal/service/booking"
	"github.com/Domenick1991/airticket/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Accounts account.AccountUseCase
	Catalog  catalog.CatalogUseCase
	Bookings booking.BookingUseCase
}

// NewRouter wires every handler under /api plus /health and /metrics.
func NewRouter(services Services) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), Logger(), metrics.Middleware(), Recovery())

	api := router.Group("/api")
	NewAccountHandler(services.Accounts).Register(api)
	NewCityHandler(services.Catalog).Register(api)
	NewFlightHandler(services.Catalog).Register(api)
	NewTicketHandler(services.Bookings).Register(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "airticket"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}
