package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection   = "users"
	citiesCollection  = "cities"
	flightsCollection = "flights"
	ticketsCollection = "tickets"
)

// ConnectMongo opens the shared client and checks the primary is reachable.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureMongoIndexes creates the unique username index and the ticket owner index.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}
	_, err = db.Collection(ticketsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create tickets index: %w", err)
	}
	return nil
}

func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:   NewMongoUserRepository(db),
		Cities:  NewMongoCityRepository(db),
		Flights: NewMongoFlightRepository(db),
		Tickets: NewMongoTicketRepository(db),
	}
}

// objectID converts a hex id coming from the domain layer. Ids that do not
// parse cannot exist in the store.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func newObjectID(id string) primitive.ObjectID {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return primitive.NewObjectID()
}
