package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airticket/api"
	"github.com/Domenick1991/airticket/config"
	"github.com/Domenick1991/airticket/internal/bootstrap"
	"github.com/Domenick1991/airticket/internal/cache"
	"github.com/Domenick1991/airticket/internal/kafka"
	"github.com/Domenick1991/airticket/internal/logger"
	"github.com/Domenick1991/airticket/internal/service/account"
	"github.com/Domenick1991/airticket/internal/service/booking"
	"github.com/Domenick1991/airticket/internal/service/catalog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()

	catalogOpts := []catalog.CatalogServiceOption{catalog.WithSeedCities(cfg.Catalog.SeedCities)}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.CitiesTTLSecond)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, city cache will miss")
		}
		catalogOpts = append(catalogOpts, catalog.WithCityCache(redisCache))
	}

	var bookingOpts []booking.BookingServiceOption
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn().Err(err).Strs("brokers", cfg.Kafka.Brokers).Msg("kafka unavailable, ticket events may be lost")
		}
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.TicketTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	repos := store.Repos
	services := api.Services{
		Accounts: account.NewAccountService(repos.Users, account.WithBcryptCost(cfg.Auth.BcryptCost)),
		Catalog:  catalog.NewCatalogService(repos.Cities, repos.Flights, catalogOpts...),
		Bookings: booking.NewBookingService(repos.Tickets, repos.Users, bookingOpts...),
	}

	gin.SetMode(cfg.HTTP.GinMode)
	router := api.NewRouter(services)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Error().Err(err).Msg("server error")
	}
}
