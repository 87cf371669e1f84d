package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that no item with the requested id exists.
var ErrNotFound = errors.New("item not found")

// ValidationError reports required fields that were missing or empty on a
// create request. No record is persisted when it is returned.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// StorageError wraps a failure to read or write the durable document. The
// operation that hit it fails immediately; nothing is retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
