package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/airticket/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type flightDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	UserID        string             `bson:"userId"`
	Name          string             `bson:"name"`
	From          string             `bson:"from"`
	Destination   string             `bson:"destination"`
	PriceEconomy  float64            `bson:"priceEconomy"`
	PriceBusiness float64            `bson:"priceBusiness"`
	Date          time.Time          `bson:"date"`
}

type MongoFlightRepository struct {
	coll *mongo.Collection
}

func NewMongoFlightRepository(db *mongo.Database) FlightRepository {
	return &MongoFlightRepository{coll: db.Collection(flightsCollection)}
}

func (r *MongoFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	doc := flightDoc{
		ID:            newObjectID(flight.ID),
		UserID:        flight.OwnerID,
		Name:          flight.Name,
		From:          flight.From,
		Destination:   flight.Destination,
		PriceEconomy:  flight.PriceEconomy,
		PriceBusiness: flight.PriceBusiness,
		Date:          flight.Date,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	flight.ID = doc.ID.Hex()
	return nil
}

func (r *MongoFlightRepository) Find(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	cur, err := r.coll.Find(ctx, flightQuery(filter))
	if err != nil {
		return nil, err
	}
	var docs []flightDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	flights := make([]domain.Flight, 0, len(docs))
	for _, d := range docs {
		flights = append(flights, domain.Flight{
			ID:            d.ID.Hex(),
			OwnerID:       d.UserID,
			Name:          d.Name,
			From:          d.From,
			Destination:   d.Destination,
			PriceEconomy:  d.PriceEconomy,
			PriceBusiness: d.PriceBusiness,
			Date:          d.Date,
		})
	}
	return flights, nil
}

// flightQuery only adds keys for the fields that are set.
func flightQuery(filter domain.FlightFilter) bson.M {
	q := bson.M{}
	if filter.From != nil {
		q["from"] = *filter.From
	}
	if filter.Destination != nil {
		q["destination"] = *filter.Destination
	}
	return q
}

var _ FlightRepository = (*MongoFlightRepository)(nil)
