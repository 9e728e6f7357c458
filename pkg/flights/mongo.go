package flights

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type flightDoc struct {
	Number string `bson:"number"`
}

// MongoStore keeps one document per flight number.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore ensures a unique index on the number field of coll and
// returns a store over it.
func NewMongoStore(ctx context.Context, coll *mongo.Collection) (*MongoStore, error) {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &MongoStore{coll: coll}, nil
}

func (m *MongoStore) Add(ctx context.Context, number string) (bool, error) {
	_, err := m.coll.InsertOne(ctx, flightDoc{Number: number})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// All returns the numbers sorted by the server.
func (m *MongoStore) All(ctx context.Context) ([]string, error) {
	cur, err := m.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []flightDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Number
	}
	return out, nil
}
