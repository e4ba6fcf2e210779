// Package store owns the MongoDB connection and exposes the small
// document-store surface the domain layer depends on: insert one document,
// query documents, list collection names. Every collection maps to one
// entity kind; documents are schemaless maps validated upstream.
package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talentops/internal/platform/config"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo ping")
	}

	return &Store{client: client, db: client.Database(cfg.DatabaseName)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) DatabaseName() string {
	return s.db.Name()
}

// Insert writes a single document and returns the generated identifier as a
// hex string. The caller is responsible for having validated the document.
func (s *Store) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", errors.Wrapf(err, "insert into %s", collection)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

// Find returns up to limit documents matching filter (nil matches all;
// limit <= 0 means no limit). The Mongo-native _id is replaced by a public
// "id" hex-string field so the store identifier type never leaks upward.
func (s *Store) Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, toFilter(filter), opts)
	if err != nil {
		return nil, errors.Wrapf(err, "find in %s", collection)
	}
	defer cur.Close(ctx)

	var docs []map[string]any
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, "decode document from %s", collection)
		}
		docs = append(docs, publicDoc(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrapf(err, "cursor in %s", collection)
	}
	return docs, nil
}

// FindOne returns the first document matching filter, or ok=false.
func (s *Store) FindOne(ctx context.Context, collection string, filter map[string]any) (map[string]any, bool, error) {
	docs, err := s.Find(ctx, collection, filter, 1)
	if err != nil {
		return nil, false, err
	}
	if len(docs) == 0 {
		return nil, false, nil
	}
	return docs[0], true, nil
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "list collection names")
	}
	return names, nil
}

// EnsureIndexes creates the unique indexes that back the seeder's
// idempotency keys. The application-level lookup remains an optimization;
// these constraints are the actual integrity mechanism under concurrent
// seeding.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for collection, models := range uniqueIndexes {
		if _, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "ensure indexes on %s", collection)
		}
	}
	return nil
}

var uniqueIndexes = map[string][]mongo.IndexModel{
	"user": {
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	},
	"employee": {
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("uniq_user_id").SetUnique(true),
		},
	},
	"team": {
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("uniq_name").SetUnique(true),
		},
	},
}

func toFilter(filter map[string]any) bson.M {
	if len(filter) == 0 {
		return bson.M{}
	}
	return bson.M(filter)
}

// publicDoc converts a raw bson document into the wire representation,
// surfacing _id as a string "id" field and unwrapping bson array values.
func publicDoc(raw bson.M) map[string]any {
	doc := make(map[string]any, len(raw))
	for key, value := range raw {
		if key == "_id" {
			if oid, ok := value.(primitive.ObjectID); ok {
				doc["id"] = oid.Hex()
			} else {
				doc["id"] = value
			}
			continue
		}
		doc[key] = publicValue(value)
	}
	return doc
}

func publicValue(value any) any {
	switch v := value.(type) {
	case primitive.A:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = publicValue(item)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = publicValue(item)
		}
		return out
	default:
		return value
	}
}
