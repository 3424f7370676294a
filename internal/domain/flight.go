package domain

import "time"

// Flight is a catalog offering. OwnerID only records who added it.
type Flight struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"userId"`
	Name          string    `json:"name"`
	From          string    `json:"from"`
	Destination   string    `json:"destination"`
	PriceEconomy  float64   `json:"priceEconomy"`
	PriceBusiness float64   `json:"priceBusiness"`
	Date          time.Time `json:"date"`
}

// FlightFilter narrows a flight search. A nil field does not constrain the result.
type FlightFilter struct {
	From        *string
	Destination *string
}
