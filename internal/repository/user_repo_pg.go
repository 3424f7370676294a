package repository

import (
	"context"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = domain.NewID()
	}
	_, err := r.db.Exec(ctx, `INSERT INTO users (id, username, email, phone, password_hash) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Email, user.Phone, user.PasswordHash)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PGUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, username, email, phone, password_hash FROM users WHERE username=$1`, username)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *PGUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, username, email, phone, password_hash FROM users WHERE id=$1`, id)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
