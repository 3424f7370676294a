package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airticket/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ticketDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      string             `bson:"userId"`
	FlightName  string             `bson:"flightName"`
	From        string             `bson:"from"`
	Destination string             `bson:"destination"`
	Price       float64            `bson:"price"`
	Date        time.Time          `bson:"date"`
}

func (d ticketDoc) toDomain() domain.Ticket {
	return domain.Ticket{
		ID:          d.ID.Hex(),
		OwnerID:     d.UserID,
		FlightName:  d.FlightName,
		From:        d.From,
		Destination: d.Destination,
		Price:       d.Price,
		Date:        d.Date,
	}
}

type MongoTicketRepository struct {
	coll *mongo.Collection
}

func NewMongoTicketRepository(db *mongo.Database) TicketRepository {
	return &MongoTicketRepository{coll: db.Collection(ticketsCollection)}
}

func (r *MongoTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	doc := ticketDoc{
		ID:          newObjectID(ticket.ID),
		UserID:      ticket.OwnerID,
		FlightName:  ticket.FlightName,
		From:        ticket.From,
		Destination: ticket.Destination,
		Price:       ticket.Price,
		Date:        ticket.Date,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	ticket.ID = doc.ID.Hex()
	return nil
}

func (r *MongoTicketRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error) {
	cur, err := r.coll.Find(ctx, bson.M{"userId": ownerID})
	if err != nil {
		return nil, err
	}
	var docs []ticketDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, 0, len(docs))
	for _, d := range docs {
		tickets = append(tickets, d.toDomain())
	}
	return tickets, nil
}

func (r *MongoTicketRepository) Delete(ctx context.Context, id string) (*domain.Ticket, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc ticketDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	t := doc.toDomain()
	return &t, nil
}

var _ TicketRepository = (*MongoTicketRepository)(nil)
