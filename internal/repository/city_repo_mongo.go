package repository

import (
	"context"

	"github.com/Domenick1991/airticket/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cityDoc struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

type MongoCityRepository struct {
	coll *mongo.Collection
}

func NewMongoCityRepository(db *mongo.Database) CityRepository {
	return &MongoCityRepository{coll: db.Collection(citiesCollection)}
}

// InsertMany does not check for existing names.
func (r *MongoCityRepository) InsertMany(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(names))
	for _, name := range names {
		docs = append(docs, cityDoc{ID: primitive.NewObjectID(), Name: name})
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (r *MongoCityRepository) List(ctx context.Context) ([]domain.City, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	var docs []cityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	cities := make([]domain.City, 0, len(docs))
	for _, d := range docs {
		cities = append(cities, domain.City{ID: d.ID.Hex(), Name: d.Name})
	}
	return cities, nil
}

var _ CityRepository = (*MongoCityRepository)(nil)
