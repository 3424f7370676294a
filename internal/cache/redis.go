package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/airticket/config"
	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	citiesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, citiesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		citiesTTL: citiesTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetCities returns nil, nil on a miss.
func (c *RedisCache) GetCities(ctx context.Context) ([]domain.City, error) {
	data, err := c.client.Get(ctx, citiesKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decodeCities(data)
}

func (c *RedisCache) SetCities(ctx context.Context, cities []domain.City) error {
	payload, err := json.Marshal(cities)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, citiesKey(), payload, c.citiesTTL).Err()
}

func (c *RedisCache) InvalidateCities(ctx context.Context) error {
	return c.client.Del(ctx, citiesKey()).Err()
}

func decodeCities(data []byte) ([]domain.City, error) {
	cities := make([]domain.City, 0)
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func citiesKey() string {
	return "cache:cities"
}
