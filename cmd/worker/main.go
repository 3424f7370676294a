package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airticket/config"
	"github.com/Domenick1991/airticket/internal/email"
	"github.com/Domenick1991/airticket/internal/kafka"
	"github.com/Domenick1991/airticket/internal/logger"
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

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("kafka brokers are not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender()
	log.Info().Str("topic", cfg.Kafka.NotificationsTopic).Msg("worker started")

	err = consumer.Consume(ctx, kafka.TicketEventHandler(func(ctx context.Context, event kafka.TicketEvent) error {
		if err := sender.Send(ctx, event); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("ticket_id", event.TicketID).Msg("send notification")
		}
		return nil
	}))
	if err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("consumer stopped")
	}
	log.Info().Msg("worker stopped")
}
