// Package storage provides the opaque key-value persistence backend the
// record store is built on. The backend offers no granularity below a
// whole value per key.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Backend persists opaque values under fixed keys. Load reports ok=false
// when the key has never been written, which callers treat as an empty
// collection rather than an error.
type Backend interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}

// PersistenceError wraps a backend read or write failure. State may be
// partially applied when a multi-write operation fails midway; callers
// retry or surface the failure, never swallow it.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pErr *PersistenceError
	return errors.As(err, &pErr)
}
