package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

// MongoStore keeps one Mongo collection per demo collection. Records keep their
// own "id" field; Mongo's _id only gives the insertion order.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoConnection connects and pings, like NewDBConnection does for Postgres.
func NewMongoConnection(ctx context.Context, uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the id, lookup and unique indexes of every demo collection.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	for _, name := range entity.DemoCollections {
		models := []mongo.IndexModel{{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("uniq_id").SetUnique(true),
		}}
		for _, field := range lookupFields {
			models = append(models, mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetName("idx_" + field),
			})
		}
		for _, field := range UniqueIndexes[name] {
			models = append(models, mongo.IndexModel{
				Keys: bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetName("uniq_" + field).SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: field, Value: bson.D{{Key: "$type", Value: "string"}}}}),
			})
		}
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func (s *MongoStore) InsertMany(ctx context.Context, collection string, records []entity.Record) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, len(records))
	for i, r := range records {
		docs[i] = r
	}
	if _, err := s.db.Collection(collection).InsertMany(ctx, docs); err != nil {
		return entity.NewStorageError("insert", collection, mapMongoError(err))
	}
	return nil
}

func (s *MongoStore) Upsert(ctx context.Context, collection string, record entity.Record) error {
	_, err := s.db.Collection(collection).ReplaceOne(ctx,
		bson.D{{Key: "id", Value: record.RecordID()}},
		record,
		options.Replace().SetUpsert(true))
	if err != nil {
		return entity.NewStorageError("upsert", collection, mapMongoError(err))
	}
	return nil
}

func (s *MongoStore) exists(ctx context.Context, collection string) (bool, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: collection}})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

func (s *MongoStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	ok, err := s.exists(ctx, collection)
	if err != nil {
		return 0, entity.NewStorageError("delete_all", collection, err)
	}
	if !ok {
		return 0, entity.NewStorageError("delete_all", collection, entity.ErrCollectionNotFound)
	}
	res, err := s.db.Collection(collection).DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, entity.NewStorageError("delete_all", collection, err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, collection, id string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return entity.NewStorageError("delete", collection, err)
	}
	if res.DeletedCount == 0 {
		return entity.NewStorageError("delete", collection, entity.ErrRecordNotFound)
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter entity.Filter) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, ToBSON(filter))
	if err != nil {
		return 0, entity.NewStorageError("count", collection, err)
	}
	return n, nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter entity.Filter, out interface{}) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.db.Collection(collection).Find(ctx, ToBSON(filter), opts)
	if err != nil {
		return entity.NewStorageError("find", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return entity.NewStorageError("find", collection, err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ToBSON renders a filter as a Mongo query document.
func ToBSON(filter entity.Filter) bson.D {
	doc := bson.D{}
	for _, cond := range filter {
		switch cond.Op {
		case entity.OpEq:
			doc = append(doc, bson.E{Key: cond.Field, Value: cond.Value})
		case entity.OpLt:
			doc = append(doc, bson.E{Key: cond.Field, Value: bson.D{{Key: "$lt", Value: cond.Value}}})
		case entity.OpGt:
			doc = append(doc, bson.E{Key: cond.Field, Value: bson.D{{Key: "$gt", Value: cond.Value}}})
		case entity.OpIn:
			doc = append(doc, bson.E{Key: cond.Field, Value: bson.D{{Key: "$in", Value: cond.Value}}})
		}
	}
	return doc
}

func mapMongoError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", entity.ErrDuplicateRecord, err)
	}
	if errors.Is(err, mongo.ErrNilDocument) {
		return fmt.Errorf("empty document: %w", err)
	}
	return err
}
