package api

import (
	"net/http"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/Domenick1991/airticket/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service booking.BookingUseCase
}

type bookTicketRequest struct {
	UserID      string `json:"userId"`
	From        string `json:"from"`
	Destination string `json:"destination"`
	FlightName  string `json:"flightName"`
	Price       Number `json:"price"`
	Date        Date   `json:"date"`
}

type myBookingsResponse struct {
	Tickets     []domain.Ticket `json:"tickets"`
	CurrentUser *domain.Owner   `json:"currentuser"`
}

func NewTicketHandler(service booking.BookingUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/ticket-booking", h.book)
	router.GET("/my-bookings/:userId", h.myBookings)
	// Any caller holding a ticket id may cancel it; ownership is not checked.
	router.DELETE("/cancel-ticket/:ticketId", h.cancel)
}

func (h *TicketHandler) book(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, booking.MsgBookFailed)
		return
	}

	_, err := h.service.BookTicket(c.Request.Context(), booking.BookTicketInput{
		UserID:      req.UserID,
		From:        req.From,
		Destination: req.Destination,
		FlightName:  req.FlightName,
		Price:       float64(req.Price),
		Date:        req.Date.Time,
	})
	if err != nil {
		respondError(c, err, booking.MsgBookFailed)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Ticket booked successfully"})
}

func (h *TicketHandler) myBookings(c *gin.Context) {
	result, err := h.service.ListBookingsForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, booking.MsgListFailed)
		return
	}
	tickets := result.Tickets
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	c.JSON(http.StatusOK, myBookingsResponse{Tickets: tickets, CurrentUser: result.Owner})
}

func (h *TicketHandler) cancel(c *gin.Context) {
	if _, err := h.service.CancelTicket(c.Request.Context(), c.Param("ticketId")); err != nil {
		respondError(c, err, booking.MsgCancelFailed)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Ticket canceled successfully"})
}
