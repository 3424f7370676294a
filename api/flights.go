package api

import (
	"net/http"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/Domenick1991/airticket/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service catalog.CatalogUseCase
}

type addFlightRequest struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	From          string `json:"from"`
	Destination   string `json:"destination"`
	PriceEconomy  Number `json:"priceEconomy"`
	PriceBusiness Number `json:"priceBusiness"`
	Date          Date   `json:"date"`
}

type flightsResponse struct {
	Flights []domain.Flight `json:"flights"`
}

func NewFlightHandler(service catalog.CatalogUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/add-flight", h.add)
	router.GET("/available-flights", h.available)
}

func (h *FlightHandler) add(c *gin.Context) {
	var req addFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, catalog.MsgAddFailed)
		return
	}

	_, err := h.service.AddFlight(c.Request.Context(), catalog.AddFlightInput{
		UserID:        req.UserID,
		Name:          req.Name,
		From:          req.From,
		Destination:   req.Destination,
		PriceEconomy:  float64(req.PriceEconomy),
		PriceBusiness: float64(req.PriceBusiness),
		Date:          req.Date.Time,
	})
	if err != nil {
		respondError(c, err, catalog.MsgAddFailed)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Flight added successfully"})
}

// available treats an absent query parameter as unconstrained. A parameter
// that is present but empty still filters on the empty string.
func (h *FlightHandler) available(c *gin.Context) {
	var filter domain.FlightFilter
	if from, ok := c.GetQuery("from"); ok {
		filter.From = &from
	}
	if destination, ok := c.GetQuery("destination"); ok {
		filter.Destination = &destination
	}

	flights, err := h.service.FindFlights(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, catalog.MsgFlightsFailed)
		return
	}
	if flights == nil {
		flights = []domain.Flight{}
	}
	c.JSON(http.StatusOK, flightsResponse{Flights: flights})
}
