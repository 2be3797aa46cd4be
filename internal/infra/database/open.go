package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

// DocumentStore is implemented by every backend in this package.
type DocumentStore interface {
	InsertMany(ctx context.Context, collection string, records []entity.Record) error
	DeleteAll(ctx context.Context, collection string) (int64, error)
	Count(ctx context.Context, collection string, filter entity.Filter) (int64, error)
	Find(ctx context.Context, collection string, filter entity.Filter, out interface{}) error
	Upsert(ctx context.Context, collection string, record entity.Record) error
	DeleteOne(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}

type Options struct {
	Driver        string
	DatabaseURL   string
	Table         string
	MongoURL      string
	MongoDatabase string
}

// Open connects the selected backend and prepares its schema and indexes. The
// returned close func releases the connection.
func Open(ctx context.Context, opts Options) (DocumentStore, func(context.Context) error, error) {
	switch opts.Driver {
	case "", "memory":
		return NewMemoryStore(), func(context.Context) error { return nil }, nil

	case "postgres":
		db, err := NewDBConnection(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store := NewPostgresStore(db, opts.Table)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to migrate: %w", err)
		}
		return store, func(context.Context) error { return db.Close() }, nil

	case "mongo":
		store, err := NewMongoConnection(ctx, opts.MongoURL, opts.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			store.Close(ctx)
			return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
