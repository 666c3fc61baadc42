package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMongoURI means the process was started without a database
	// connection string. Nothing can be served in that state.
	ErrMissingMongoURI = errors.New("MONGODB_URI is not configured")

	// ErrNotFound covers both an unknown and a malformed document id.
	ErrNotFound = errors.New("not found")
)

// ConnectionError wraps a driver failure while establishing the database
// connection.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// StorageError wraps any persistence failure other than a missing document.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
