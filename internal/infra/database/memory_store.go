package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

// MemoryStore keeps JSON documents per collection in insertion order. It backs the
// demo when no database is configured and the use case tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
	unique      map[string][]string
}

type memCollection struct {
	order []string
	docs  map[string]memDoc
}

type memDoc struct {
	raw    json.RawMessage
	fields map[string]any
}

type MemoryOption func(*MemoryStore)

// WithUniqueIndex rejects a second document with the same non-empty field value.
func WithUniqueIndex(collection, field string) MemoryOption {
	return func(s *MemoryStore) {
		s.unique[collection] = append(s.unique[collection], field)
	}
}

// WithCollections creates empty collections up front.
func WithCollections(names ...string) MemoryOption {
	return func(s *MemoryStore) {
		for _, name := range names {
			s.collection(name)
		}
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		collections: make(map[string]*memCollection),
		unique:      make(map[string][]string),
	}
	for collection, fields := range UniqueIndexes {
		for _, field := range fields {
			WithUniqueIndex(collection, field)(s)
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// collection returns the named collection, creating it. Callers hold the write lock.
func (s *MemoryStore) collection(name string) *memCollection {
	c, ok := s.collections[name]
	if !ok {
		c = &memCollection{docs: make(map[string]memDoc)}
		s.collections[name] = c
	}
	return c
}

func encodeDoc(record entity.Record) (memDoc, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return memDoc{}, err
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return memDoc{}, err
	}
	return memDoc{raw: raw, fields: fields}, nil
}

func (s *MemoryStore) InsertMany(ctx context.Context, collection string, records []entity.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	docs := make([]memDoc, len(records))
	for i, r := range records {
		doc, err := encodeDoc(r)
		if err != nil {
			return entity.NewStorageError("insert", collection, err)
		}
		docs[i] = doc
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	batch := make(map[string]memDoc, len(records))
	for i, r := range records {
		id := r.RecordID()
		if _, dup := c.docs[id]; dup {
			return entity.NewStorageError("insert", collection, entity.ErrDuplicateRecord)
		}
		if _, dup := batch[id]; dup {
			return entity.NewStorageError("insert", collection, entity.ErrDuplicateRecord)
		}
		if err := s.checkUnique(collection, c, batch, id, docs[i]); err != nil {
			return entity.NewStorageError("insert", collection, err)
		}
		batch[id] = docs[i]
	}

	for i, r := range records {
		id := r.RecordID()
		c.order = append(c.order, id)
		c.docs[id] = docs[i]
	}
	return nil
}

// checkUnique compares doc against the stored documents and the pending batch,
// skipping the document with the same id.
func (s *MemoryStore) checkUnique(collection string, c *memCollection, batch map[string]memDoc, id string, doc memDoc) error {
	for _, field := range s.unique[collection] {
		value, ok := doc.fields[field]
		if !ok || value == nil || value == "" {
			continue
		}
		for _, others := range []map[string]memDoc{c.docs, batch} {
			for otherID, other := range others {
				if otherID != id && other.fields[field] == value {
					return fmt.Errorf("%w: %s %v", entity.ErrDuplicateRecord, field, value)
				}
			}
		}
	}
	return nil
}

func (s *MemoryStore) Upsert(ctx context.Context, collection string, record entity.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := encodeDoc(record)
	if err != nil {
		return entity.NewStorageError("upsert", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	id := record.RecordID()
	if err := s.checkUnique(collection, c, nil, id, doc); err != nil {
		return entity.NewStorageError("upsert", collection, err)
	}
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = doc
	return nil
}

func (s *MemoryStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		return 0, entity.NewStorageError("delete_all", collection, entity.ErrCollectionNotFound)
	}
	n := int64(len(c.order))
	c.order = nil
	c.docs = make(map[string]memDoc)
	return n, nil
}

func (s *MemoryStore) DeleteOne(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		return entity.NewStorageError("delete", collection, entity.ErrRecordNotFound)
	}
	if _, ok := c.docs[id]; !ok {
		return entity.NewStorageError("delete", collection, entity.ErrRecordNotFound)
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count of a missing collection is 0.
func (s *MemoryStore) Count(ctx context.Context, collection string, filter entity.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	match, err := compileFilter(filter)
	if err != nil {
		return 0, entity.NewStorageError("count", collection, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return 0, nil
	}
	var n int64
	for _, id := range c.order {
		if match(c.docs[id].fields) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter entity.Filter, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	match, err := compileFilter(filter)
	if err != nil {
		return entity.NewStorageError("find", collection, err)
	}

	s.mu.RLock()
	var buf bytes.Buffer
	buf.WriteByte('[')
	if c, ok := s.collections[collection]; ok {
		first := true
		for _, id := range c.order {
			doc := c.docs[id]
			if !match(doc.fields) {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			buf.Write(doc.raw)
			first = false
		}
	}
	buf.WriteByte(']')
	s.mu.RUnlock()

	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return entity.NewStorageError("find", collection, err)
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Drop removes a collection entirely, so later deletes report it as missing.
func (s *MemoryStore) Drop(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, collection)
}
