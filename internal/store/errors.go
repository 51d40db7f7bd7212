package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("link not found")
	ErrCodeExists  = errors.New("code already exists")
	ErrUnavailable = errors.New("storage unavailable")
	ErrNotReady    = errors.New("store not initialized")
	ErrNoBackend   = errors.New("no database backend available")
)

// ConnectError reports a backend that could not be opened during startup.
type ConnectError struct {
	Kind Kind
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Kind, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func unavailable(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, ErrUnavailable, err)
}
