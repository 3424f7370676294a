package domain

import "time"

// Ticket is a snapshot of the flight data at booking time. It does not
// reference a Flight record.
type Ticket struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"userId"`
	FlightName  string    `json:"flightName"`
	From        string    `json:"from"`
	Destination string    `json:"destination"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"date"`
}
