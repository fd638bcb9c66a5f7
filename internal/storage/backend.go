// Package storage provides the key/value persistence primitive under the
// compliance ledger: a durable backend, an in-process fallback, and a wrapper
// that picks one at first use and never lets a backend failure reach callers.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a Backend when the key was never set.
	ErrNotFound = errors.New("storage: key not found")
	// ErrUnavailable marks a durable backend that failed the availability probe.
	ErrUnavailable = errors.New("storage: durable backend unavailable")
	ErrRead        = errors.New("storage: read failed")
	ErrWrite       = errors.New("storage: write failed")
	ErrParse       = errors.New("storage: stored value unreadable")
)

// Backend is a raw key/value store. Implementations return errors freely;
// Store is responsible for containing them.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
