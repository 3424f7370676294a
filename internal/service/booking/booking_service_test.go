package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/Domenick1991/airticket/internal/kafka"
	"github.com/Domenick1991/airticket/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id string) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newService(tickets *MockTicketRepository, users *MockUserRepository, opts ...BookingServiceOption) *BookingService {
	s := NewBookingService(tickets, users, opts...)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestBookingService_BookTicket_NoFlightRequired(t *testing.T) {
	tickets := &MockTicketRepository{}
	service := newService(tickets, &MockUserRepository{})
	ctx := context.Background()
	date := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	tickets.On("Create", ctx, mock.AnythingOfType("*domain.Ticket")).Return(nil).Once()

	ticket, err := service.BookTicket(ctx, BookTicketInput{
		UserID:      "u1",
		From:        "A",
		Destination: "B",
		FlightName:  "XYZ123",
		Price:       100,
		Date:        date,
	})

	require.NoError(t, err)
	assert.Len(t, ticket.ID, 24)
	assert.Equal(t, "u1", ticket.OwnerID)
	assert.Equal(t, "XYZ123", ticket.FlightName)
	assert.Equal(t, "A", ticket.From)
	assert.Equal(t, "B", ticket.Destination)
	assert.Equal(t, 100.0, ticket.Price)
	assert.Equal(t, date, ticket.Date)
	tickets.AssertExpectations(t)
}

func TestBookingService_BookTicket_SameTicketTwiceIsTwoRecords(t *testing.T) {
	tickets := &MockTicketRepository{}
	service := newService(tickets, &MockUserRepository{})
	ctx := context.Background()

	var ids []string
	tickets.On("Create", ctx, mock.AnythingOfType("*domain.Ticket")).
		Run(func(args mock.Arguments) { ids = append(ids, args.Get(1).(*domain.Ticket).ID) }).
		Return(nil).Twice()

	input := BookTicketInput{UserID: "u1", From: "A", Destination: "B", FlightName: "XYZ123", Price: 100}
	_, err := service.BookTicket(ctx, input)
	require.NoError(t, err)
	_, err = service.BookTicket(ctx, input)
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestBookingService_BookTicket_StoreFailure(t *testing.T) {
	tickets := &MockTicketRepository{}
	producer := &MockProducer{}
	service := newService(tickets, &MockUserRepository{}, WithProducer(producer, "tickets"))
	ctx := context.Background()

	tickets.On("Create", ctx, mock.Anything).Return(errors.New("write concern")).Once()

	_, err := service.BookTicket(ctx, BookTicketInput{UserID: "u1"})
	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, MsgBookFailed, de.Message)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_BookTicket_PublishesEvents(t *testing.T) {
	tickets := &MockTicketRepository{}
	producer := &MockProducer{}
	service := newService(tickets, &MockUserRepository{},
		WithProducer(producer, "tickets"),
		WithNotificationsTopic("notifications"),
	)
	ctx := context.Background()

	tickets.On("Create", ctx, mock.Anything).Return(nil).Once()
	isBooked := mock.MatchedBy(func(ev kafka.TicketEvent) bool {
		return ev.Type == kafka.EventTicketBooked && ev.UserID == "u1" && ev.OccurredAt.Equal(fixedNow)
	})
	producer.On("Publish", ctx, "tickets", mock.AnythingOfType("string"), isBooked).Return(nil).Once()
	producer.On("Publish", ctx, "notifications", mock.AnythingOfType("string"), isBooked).Return(nil).Once()

	ticket, err := service.BookTicket(ctx, BookTicketInput{UserID: "u1", FlightName: "XYZ123"})
	require.NoError(t, err)

	producer.AssertExpectations(t)
	producer.AssertCalled(t, "Publish", ctx, "tickets", ticket.ID, isBooked)
}

func TestBookingService_BookTicket_PublishFailureIsIgnored(t *testing.T) {
	tickets := &MockTicketRepository{}
	producer := &MockProducer{}
	service := newService(tickets, &MockUserRepository{},
		WithProducer(producer, "tickets"),
		WithNotificationsTopic("notifications"),
	)
	ctx := context.Background()

	tickets.On("Create", ctx, mock.Anything).Return(nil).Once()
	producer.On("Publish", ctx, "tickets", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := service.BookTicket(ctx, BookTicketInput{UserID: "u1"})
	require.NoError(t, err)
	producer.AssertNotCalled(t, "Publish", ctx, "notifications", mock.Anything, mock.Anything)
}

func TestBookingService_ListBookingsForUser(t *testing.T) {
	tickets := &MockTicketRepository{}
	users := &MockUserRepository{}
	service := newService(tickets, users)
	ctx := context.Background()
	userID := domain.NewID()

	booked := []domain.Ticket{
		{ID: domain.NewID(), OwnerID: userID, FlightName: "XYZ123"},
		{ID: domain.NewID(), OwnerID: userID, FlightName: "ABC456"},
	}
	tickets.On("ListByOwner", ctx, userID).Return(booked, nil).Once()
	users.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Username: "alice", PasswordHash: "hash"}, nil).Once()

	got, err := service.ListBookingsForUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, booked, got.Tickets)
	require.NotNil(t, got.Owner)
	assert.Equal(t, domain.Owner{ID: userID, Username: "alice"}, *got.Owner)
}

func TestBookingService_ListBookingsForUser_UnknownOwnerStillReturnsTickets(t *testing.T) {
	tickets := &MockTicketRepository{}
	users := &MockUserRepository{}
	service := newService(tickets, users)
	ctx := context.Background()
	userID := domain.NewID()

	booked := []domain.Ticket{{ID: domain.NewID(), OwnerID: userID}}
	tickets.On("ListByOwner", ctx, userID).Return(booked, nil).Once()
	users.On("GetByID", ctx, userID).Return(nil, repository.ErrNotFound).Once()

	got, err := service.ListBookingsForUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, booked, got.Tickets)
	assert.Nil(t, got.Owner)
}

func TestBookingService_ListBookingsForUser_OwnerLookupErrorIsSwallowed(t *testing.T) {
	tickets := &MockTicketRepository{}
	users := &MockUserRepository{}
	service := newService(tickets, users)
	ctx := context.Background()
	userID := domain.NewID()

	tickets.On("ListByOwner", ctx, userID).Return(nil, nil).Once()
	users.On("GetByID", ctx, userID).Return(nil, errors.New("socket closed")).Once()

	got, err := service.ListBookingsForUser(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, got.Tickets)
	assert.Empty(t, got.Tickets)
	assert.Nil(t, got.Owner)
}

func TestBookingService_ListBookingsForUser_MalformedID(t *testing.T) {
	tickets := &MockTicketRepository{}
	users := &MockUserRepository{}
	service := newService(tickets, users)

	_, err := service.ListBookingsForUser(context.Background(), "not-an-object-id")
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	tickets.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestBookingService_ListBookingsForUser_StoreFailure(t *testing.T) {
	tickets := &MockTicketRepository{}
	service := newService(tickets, &MockUserRepository{})
	ctx := context.Background()
	userID := domain.NewID()

	tickets.On("ListByOwner", ctx, userID).Return(nil, errors.New("boom")).Once()

	_, err := service.ListBookingsForUser(ctx, userID)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestBookingService_CancelTicket_TwiceThenNotFound(t *testing.T) {
	tickets := &MockTicketRepository{}
	service := newService(tickets, &MockUserRepository{})
	ctx := context.Background()
	ticketID := domain.NewID()

	tickets.On("Delete", ctx, ticketID).Return(&domain.Ticket{ID: ticketID, OwnerID: "someone-else"}, nil).Once()
	tickets.On("Delete", ctx, ticketID).Return(nil, repository.ErrNotFound).Once()

	ticket, err := service.CancelTicket(ctx, ticketID)
	require.NoError(t, err)
	assert.Equal(t, ticketID, ticket.ID)

	_, err = service.CancelTicket(ctx, ticketID)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, MsgTicketNotFound, de.Message)
	tickets.AssertExpectations(t)
}

func TestBookingService_CancelTicket_MalformedID(t *testing.T) {
	tickets := &MockTicketRepository{}
	service := newService(tickets, &MockUserRepository{})

	_, err := service.CancelTicket(context.Background(), "42")
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	tickets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBookingService_CancelTicket_StoreFailure(t *testing.T) {
	tickets := &MockTicketRepository{}
	service := newService(tickets, &MockUserRepository{})
	ctx := context.Background()
	ticketID := domain.NewID()

	tickets.On("Delete", ctx, ticketID).Return(nil, errors.New("boom")).Once()

	_, err := service.CancelTicket(ctx, ticketID)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestBookingService_CancelTicket_PublishesEvent(t *testing.T) {
	tickets := &MockTicketRepository{}
	producer := &MockProducer{}
	service := newService(tickets, &MockUserRepository{}, WithProducer(producer, "tickets"))
	ctx := context.Background()
	ticketID := domain.NewID()

	tickets.On("Delete", ctx, ticketID).Return(&domain.Ticket{ID: ticketID, OwnerID: "u1"}, nil).Once()
	producer.On("Publish", ctx, "tickets", ticketID, mock.MatchedBy(func(ev kafka.TicketEvent) bool {
		return ev.Type == kafka.EventTicketCanceled && ev.TicketID == ticketID
	})).Return(nil).Once()

	_, err := service.CancelTicket(ctx, ticketID)
	require.NoError(t, err)
	producer.AssertExpectations(t)
}
