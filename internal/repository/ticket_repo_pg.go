package repository

import (
	"context"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ticketColumns = `id, user_id, flight_name, from_city, destination, price, ticket_date`

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	if t.ID == "" {
		t.ID = domain.NewID()
	}
	_, err := r.db.Exec(ctx, `INSERT INTO tickets (`+ticketColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.OwnerID, t.FlightName, t.From, t.Destination, t.Price, t.Date)
	return err
}

func (r *PGTicketRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE user_id=$1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.FlightName, &t.From, &t.Destination, &t.Price, &t.Date); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) Delete(ctx context.Context, id string) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM tickets WHERE id=$1 RETURNING `+ticketColumns, id)
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.OwnerID, &t.FlightName, &t.From, &t.Destination, &t.Price, &t.Date); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
