package bootstrap

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airticket/config"
	"github.com/Domenick1991/airticket/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Store is the process wide store handle and the repositories built on it.
type Store struct {
	Repos *repository.Repositories
	close func(context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStore connects to the configured backend and prepares indexes or schema.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := repository.ConnectMongo(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")
		return &Store{Repos: repository.NewMongoRepositories(db), close: client.Disconnect}, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := repository.EnsurePGSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Str("database", cfg.Database.Name).Msg("connected to postgres")
		return &Store{
			Repos: repository.NewPGRepositories(pool),
			close: func(context.Context) error { pool.Close(); return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
