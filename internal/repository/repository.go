package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airticket/internal/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type CityRepository interface {
	InsertMany(ctx context.Context, names []string) (int, error)
	List(ctx context.Context) ([]domain.City, error)
}

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Find(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error)
	// Delete removes the ticket and returns it as it was stored.
	Delete(ctx context.Context, id string) (*domain.Ticket, error)
}

// Repositories groups one backend's implementations.
type Repositories struct {
	Users   UserRepository
	Cities  CityRepository
	Flights FlightRepository
	Tickets TicketRepository
}
