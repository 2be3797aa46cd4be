package entity

import (
	"errors"
	"fmt"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateRecord    = errors.New("duplicate record")
	ErrUnknownState       = errors.New("unknown state")
)

// StorageError wraps any failure coming out of a document store.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Collection: collection, Err: err}
}
