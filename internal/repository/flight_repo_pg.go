package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const flightColumns = `id, user_id, name, from_city, destination, price_economy, price_business, flight_date`

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	if f.ID == "" {
		f.ID = domain.NewID()
	}
	_, err := r.db.Exec(ctx, `INSERT INTO flights (`+flightColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.ID, f.OwnerID, f.Name, f.From, f.Destination, f.PriceEconomy, f.PriceBusiness, f.Date)
	return err
}

func (r *PGFlightRepository) Find(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	query, args := flightSelect(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.From, &f.Destination, &f.PriceEconomy, &f.PriceBusiness, &f.Date); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// flightSelect builds the search query with one predicate per set filter field.
func flightSelect(filter domain.FlightFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("from_city=$%d", len(args)))
	}
	if filter.Destination != nil {
		args = append(args, *filter.Destination)
		conds = append(conds, fmt.Sprintf("destination=$%d", len(args)))
	}

	query := `SELECT ` + flightColumns + ` FROM flights`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	return query, args
}

var _ FlightRepository = (*PGFlightRepository)(nil)
