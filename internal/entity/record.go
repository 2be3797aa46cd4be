package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record is anything a document store can persist.
type Record interface {
	RecordID() string
}

// Base carries the fields every persisted record shares.
type Base struct {
	ID        string    `json:"id" bson:"id"`
	ClientID  string    `json:"client_id" bson:"client_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	IsDemo    bool      `json:"is_demo" bson:"is_demo"`
}

func (b Base) RecordID() string { return b.ID }

// NewBase stamps a fresh id and both timestamps.
func NewBase(clientID string, now time.Time) Base {
	return Base{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// NewDemoBase is NewBase with the demo marker set.
func NewDemoBase(clientID string, now time.Time) Base {
	b := NewBase(clientID, now)
	b.IsDemo = true
	return b
}

// Touch bumps UpdatedAt.
func (b *Base) Touch(now time.Time) {
	b.UpdatedAt = now.UTC()
}

// Records converts a typed slice for the store.
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// StringPtr returns nil for the empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func TimePtr(t time.Time) *time.Time { return &t }

func IntPtr(i int) *int { return &i }
