package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airticket/internal/kafka"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Sender turns ticket events into customer notifications. Delivery is a
// structured log line until a mail gateway is configured.
type Sender struct {
	logger zerolog.Logger
}

func NewSender() *Sender {
	return &Sender{logger: log.Logger}
}

func NewSenderWithLogger(logger zerolog.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	subject, err := Subject(event)
	if err != nil {
		return err
	}
	s.logger.Info().
		Str("user_id", event.UserID).
		Str("ticket_id", event.TicketID).
		Str("subject", subject).
		Msg("send notification")
	return nil
}

func Subject(event kafka.TicketEvent) (string, error) {
	switch event.Type {
	case kafka.EventTicketBooked:
		return fmt.Sprintf("Ticket booked: %s %s → %s", event.FlightName, event.From, event.Destination), nil
	case kafka.EventTicketCanceled:
		return fmt.Sprintf("Ticket canceled: %s %s → %s", event.FlightName, event.From, event.Destination), nil
	default:
		return "", fmt.Errorf("unknown event type %q", event.Type)
	}
}
