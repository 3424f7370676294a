package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	EventTicketBooked   = "ticket_booked"
	EventTicketCanceled = "ticket_canceled"
)

type TicketEvent struct {
	Type        string    `json:"type"`
	TicketID    string    `json:"ticket_id"`
	UserID      string    `json:"user_id"`
	FlightName  string    `json:"flight_name"`
	From        string    `json:"from"`
	Destination string    `json:"destination"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"date"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewTicketEvent(eventType string, t *domain.Ticket, at time.Time) TicketEvent {
	return TicketEvent{
		Type:        eventType,
		TicketID:    t.ID,
		UserID:      t.OwnerID,
		FlightName:  t.FlightName,
		From:        t.From,
		Destination: t.Destination,
		Price:       t.Price,
		Date:        t.Date,
		OccurredAt:  at,
	}
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Str("key", key).Msg("published event")
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and reads partition metadata.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	log.Info().Int("partitions", len(partitions)).Msg("connected to kafka")
	return nil
}
