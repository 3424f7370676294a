package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/Domenick1991/airticket/internal/kafka"
	"github.com/Domenick1991/airticket/internal/metrics"
	"github.com/Domenick1991/airticket/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	MsgBookFailed     = "Error during ticket booking"
	MsgListFailed     = "Error fetching tickets"
	MsgTicketNotFound = "Ticket not found"
	MsgCancelFailed   = "Error canceling ticket"
)

type BookingUseCase interface {
	BookTicket(ctx context.Context, input BookTicketInput) (*domain.Ticket, error)
	ListBookingsForUser(ctx context.Context, userID string) (*UserBookings, error)
	CancelTicket(ctx context.Context, ticketID string) (*domain.Ticket, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookTicketInput struct {
	UserID      string
	From        string
	Destination string
	FlightName  string
	Price       float64
	Date        time.Time
}

// UserBookings is the result of a listing. Owner is nil when no user
// matches the id.
type UserBookings struct {
	Tickets []domain.Ticket
	Owner   *domain.Owner
}

type BookingService struct {
	tickets            repository.TicketRepository
	users              repository.UserRepository
	producer           Producer
	ticketTopic        string
	notificationsTopic string
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, ticketTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.ticketTopic = ticketTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(tickets repository.TicketRepository, users repository.UserRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		tickets: tickets,
		users:   users,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookTicket appends a ticket. It does not look at flights, prices or
// existing tickets.
func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (ticket *domain.Ticket, err error) {
	defer func() { metrics.RecordTicketOp("book", err) }()

	ticket = &domain.Ticket{
		ID:          domain.NewID(),
		OwnerID:     input.UserID,
		FlightName:  input.FlightName,
		From:        input.From,
		Destination: input.Destination,
		Price:       input.Price,
		Date:        input.Date,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("user_id", input.UserID).Msg("create ticket")
		return nil, domain.Errorf(domain.KindInternal, MsgBookFailed, err)
	}

	s.publish(ctx, kafka.EventTicketBooked, ticket)
	return ticket, nil
}

func (s *BookingService) ListBookingsForUser(ctx context.Context, userID string) (*UserBookings, error) {
	id, err := domain.ParseID(userID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListByOwner(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("user_id", id).Msg("list tickets")
		return nil, domain.Errorf(domain.KindInternal, MsgListFailed, err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}

	result := &UserBookings{Tickets: tickets}
	user, err := s.users.GetByID(ctx, id)
	switch {
	case err == nil:
		result.Owner = &domain.Owner{ID: user.ID, Username: user.Username}
	case !errors.Is(err, repository.ErrNotFound):
		log.Ctx(ctx).Warn().Err(err).Str("user_id", id).Msg("owner lookup failed")
	}
	return result, nil
}

// CancelTicket deletes the ticket regardless of who owns it.
func (s *BookingService) CancelTicket(ctx context.Context, ticketID string) (ticket *domain.Ticket, err error) {
	defer func() { metrics.RecordTicketOp("cancel", err) }()

	id, err := domain.ParseID(ticketID)
	if err != nil {
		return nil, err
	}

	ticket, err = s.tickets.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Errorf(domain.KindNotFound, MsgTicketNotFound, nil)
		}
		log.Ctx(ctx).Error().Err(err).Str("ticket_id", id).Msg("delete ticket")
		return nil, domain.Errorf(domain.KindInternal, MsgCancelFailed, err)
	}

	s.publish(ctx, kafka.EventTicketCanceled, ticket)
	return ticket, nil
}

// publish is best effort; a failed publish never fails the request.
func (s *BookingService) publish(ctx context.Context, eventType string, ticket *domain.Ticket) {
	if s.producer == nil || s.ticketTopic == "" {
		return
	}
	event := kafka.NewTicketEvent(eventType, ticket, s.now())
	if err := s.producer.Publish(ctx, s.ticketTopic, ticket.ID, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("ticket_id", ticket.ID).Str("event", eventType).Msg("publish ticket event")
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, ticket.ID, event); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("ticket_id", ticket.ID).Str("event", eventType).Msg("publish notification")
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
