package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

// SeedStore is everything seeding and reset need from persistence.
type SeedStore interface {
	InsertMany(ctx context.Context, collection string, records []entity.Record) error
	// DeleteAll fails with entity.ErrCollectionNotFound when the collection does not exist.
	DeleteAll(ctx context.Context, collection string) (int64, error)
	Count(ctx context.Context, collection string, filter entity.Filter) (int64, error)
	// Find decodes matching documents, in insertion order, into out (a pointer to a slice).
	Find(ctx context.Context, collection string, filter entity.Filter, out interface{}) error
}

// DocumentStore adds the single-record writes the API uses.
type DocumentStore interface {
	SeedStore
	Upsert(ctx context.Context, collection string, record entity.Record) error
	DeleteOne(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs and checks API bearer tokens.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
	Parse(token string) (string, error)
}

// CallJob asks a worker to place a voice call.
type CallJob struct {
	CallID    string `json:"call_id"`
	ConvertID string `json:"convert_id"`
	ClientID  string `json:"client_id"`
}

type CallDispatcher interface {
	DispatchCall(ctx context.Context, job CallJob) error
}

type EmailService interface {
	SendWelcome(to, name, churchName string) error
}

type MessageSender interface {
	SendText(ctx context.Context, phone, body string) error
}

func findAll[T any](ctx context.Context, store SeedStore, collection string, filter entity.Filter) ([]T, error) {
	var out []T
	if err := store.Find(ctx, collection, filter, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// findOne returns entity.ErrRecordNotFound when nothing matches.
func findOne[T any](ctx context.Context, store SeedStore, collection string, filter entity.Filter) (*T, error) {
	out, err := findAll[T](ctx, store, collection, filter)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, entity.ErrRecordNotFound
	}
	return &out[0], nil
}
