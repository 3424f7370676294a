package api

import (
	"net/http"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/Domenick1991/airticket/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CityHandler struct {
	service catalog.CatalogUseCase
}

type citiesResponse struct {
	Cities []domain.City `json:"cities"`
}

func NewCityHandler(service catalog.CatalogUseCase) *CityHandler {
	return &CityHandler{service: service}
}

func (h *CityHandler) Register(router *gin.RouterGroup) {
	router.POST("/insert-cities", h.seed)
	router.GET("/cities", h.list)
}

// seed takes no body; the list comes from configuration.
func (h *CityHandler) seed(c *gin.Context) {
	if _, err := h.service.SeedCities(c.Request.Context()); err != nil {
		respondError(c, err, catalog.MsgSeedFailed)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Cities inserted successfully"})
}

func (h *CityHandler) list(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		respondError(c, err, catalog.MsgCitiesFailed)
		return
	}
	if cities == nil {
		cities = []domain.City{}
	}
	c.JSON(http.StatusOK, citiesResponse{Cities: cities})
}
