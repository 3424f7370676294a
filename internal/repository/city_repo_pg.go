package repository

import (
	"context"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGCityRepository struct {
	db *pgxpool.Pool
}

func NewCityRepository(db *pgxpool.Pool) CityRepository {
	return &PGCityRepository{db: db}
}

func (r *PGCityRepository) InsertMany(ctx context.Context, names []string) (int, error) {
	rows := make([][]any, 0, len(names))
	for _, name := range names {
		rows = append(rows, []any{domain.NewID(), name})
	}
	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"cities"}, []string{"id", "name"}, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *PGCityRepository) List(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM cities`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

var _ CityRepository = (*PGCityRepository)(nil)
