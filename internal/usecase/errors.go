package usecase

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeInvalidSeedConfig = "INVALID_SEED_CONFIG"
	CodeAlreadySeeded     = "DEMO_ALREADY_SEEDED"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeConflict          = "CONFLICT"
	CodeStorage           = "STORAGE_ERROR"
	CodeClearFailed       = "CLEAR_FAILED"
	CodeHashing           = "HASHING_ERROR"
	CodeToken             = "TOKEN_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func NewNotFound(what string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: what + " not found"}
}

type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error { return e.Err }

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func storageFailure(msg string, err error) error {
	return &TechnicalError{Code: CodeStorage, Message: msg, Err: err}
}

// StageError reports which pipeline stage failed and which ones had already
// finished. Data written by the finished stages is left in place.
type StageError struct {
	Stage     string
	Completed []string
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage '%s' failed after [%s]: %v", e.Stage, strings.Join(e.Completed, ", "), e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ValidationErrors collects every field problem of one input.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
