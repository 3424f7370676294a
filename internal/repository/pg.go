package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS users (
	id            CHAR(24) PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL DEFAULT '',
	phone         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cities (
	id   CHAR(24) PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS flights (
	id             CHAR(24) PRIMARY KEY,
	user_id        TEXT NOT NULL DEFAULT '',
	name           TEXT NOT NULL DEFAULT '',
	from_city      TEXT NOT NULL DEFAULT '',
	destination    TEXT NOT NULL DEFAULT '',
	price_economy  DOUBLE PRECISION NOT NULL DEFAULT 0,
	price_business DOUBLE PRECISION NOT NULL DEFAULT 0,
	flight_date    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS tickets (
	id          CHAR(24) PRIMARY KEY,
	user_id     TEXT NOT NULL DEFAULT '',
	flight_name TEXT NOT NULL DEFAULT '',
	from_city   TEXT NOT NULL DEFAULT '',
	destination TEXT NOT NULL DEFAULT '',
	price       DOUBLE PRECISION NOT NULL DEFAULT 0,
	ticket_date TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS tickets_user_id_idx ON tickets (user_id);
`

const pgUniqueViolation = "23505"

// EnsurePGSchema creates the tables when they are missing.
func EnsurePGSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func NewPGRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(db),
		Cities:  NewCityRepository(db),
		Flights: NewFlightRepository(db),
		Tickets: NewTicketRepository(db),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
