package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by lookups, updates and deletes on a missing key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when inserting under an existing key.
	ErrDuplicateKey = errors.New("already exists")
	// ErrUnknownFood is returned when a meal references a food that is not in
	// the catalog at insertion time.
	ErrUnknownFood = errors.New("unknown food")
	// ErrInvalidInput covers negative or otherwise out-of-range field values.
	ErrInvalidInput = errors.New("invalid input")
)

// MalformedFileError indicates a backing file that could not be read or
// parsed at startup. The affected store falls back to empty; callers must
// surface the warning rather than swallow it.
type MalformedFileError struct {
	Path string
	Err  error
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed store file %s: %v", e.Path, e.Err)
}

func (e *MalformedFileError) Unwrap() error { return e.Err }
