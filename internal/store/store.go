// Package store provides typed, collection-scoped access to the opaque
// persistence backend. Every operation is a whole-collection
// read-modify-write; the backend offers no finer granularity.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bwmarrin/snowflake"

	"github.com/burnproductions/billingdesk/internal/storage"
)

// Collection keys in the persistence backend. Consumers must treat an
// absent key as an empty list.
const (
	KeyQuotes   = "business_quotes"
	KeyInvoices = "business_invoices"
	KeyExpenses = "business_expenses"
)

// ErrNotFound reports an id that is absent from its collection. The
// operation applied no state change.
var ErrNotFound = errors.New("record_not_found")

// Record is any persisted document shape.
type Record interface {
	RecordID() snowflake.ID
}

// Collection is a typed view over one backend key holding a JSON array of
// records in insertion order.
type Collection[T Record] struct {
	name    string
	backend storage.Backend
}

func NewCollection[T Record](backend storage.Backend, name string) *Collection[T] {
	return &Collection[T]{name: name, backend: backend}
}

// Name returns the backend key this collection persists under.
func (c *Collection[T]) Name() string { return c.name }

// List returns all records in insertion order. A key that was never
// written yields an empty slice, not an error.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	value, ok, err := c.backend.Load(ctx, c.name)
	if err != nil {
		return nil, err
	}
	if !ok || len(value) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(value, &records); err != nil {
		return nil, &storage.PersistenceError{Op: "decode", Key: c.name, Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Count returns the number of persisted records.
func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	records, err := c.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// GetByID returns the record with the matching id, or ErrNotFound.
func (c *Collection[T]) GetByID(ctx context.Context, id snowflake.ID) (T, error) {
	var zero T
	records, err := c.List(ctx)
	if err != nil {
		return zero, err
	}
	for _, record := range records {
		if record.RecordID() == id {
			return record, nil
		}
	}
	return zero, ErrNotFound
}

// Append adds one record at the end of the collection.
func (c *Collection[T]) Append(ctx context.Context, record T) error {
	records, err := c.List(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, append(records, record))
}

// RemoveByID removes the record with the matching id. Removing an absent
// id is a no-op, not an error.
func (c *Collection[T]) RemoveByID(ctx context.Context, id snowflake.ID) error {
	records, err := c.List(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	removed := false
	for _, record := range records {
		if record.RecordID() == id {
			removed = true
			continue
		}
		kept = append(kept, record)
	}
	if !removed {
		return nil
	}
	return c.save(ctx, kept)
}

// UpdateByID applies mutate to the record with the matching id and
// re-persists the collection. Returns ErrNotFound when the id is absent.
func (c *Collection[T]) UpdateByID(ctx context.Context, id snowflake.ID, mutate func(*T)) (T, error) {
	var zero T
	records, err := c.List(ctx)
	if err != nil {
		return zero, err
	}

	for i := range records {
		if records[i].RecordID() != id {
			continue
		}
		mutate(&records[i])
		if err := c.save(ctx, records); err != nil {
			return zero, err
		}
		return records[i], nil
	}
	return zero, ErrNotFound
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	value, err := json.Marshal(records)
	if err != nil {
		return &storage.PersistenceError{Op: "encode", Key: c.name, Err: err}
	}
	return c.backend.Save(ctx, c.name, value)
}
