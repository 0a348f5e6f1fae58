package store

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burnproductions/billingdesk/internal/storage"
)

type testRecord struct {
	ID   snowflake.ID `json:"id"`
	Name string       `json:"name"`
}

func (r testRecord) RecordID() snowflake.ID { return r.ID }

func TestListMissingKeyReturnsEmpty(t *testing.T) {
	c := NewCollection[testRecord](storage.NewMemory(), KeyQuotes)

	records, err := c.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testRecord](storage.NewMemory(), KeyQuotes)

	require.NoError(t, c.Append(ctx, testRecord{ID: 1, Name: "first"}))
	require.NoError(t, c.Append(ctx, testRecord{ID: 2, Name: "second"}))

	records, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Name)
	assert.Equal(t, "second", records[1].Name)

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testRecord](storage.NewMemory(), KeyQuotes)
	require.NoError(t, c.Append(ctx, testRecord{ID: 7, Name: "target"}))

	got, err := c.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "target", got.Name)

	_, err = c.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveByID(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testRecord](storage.NewMemory(), KeyQuotes)
	require.NoError(t, c.Append(ctx, testRecord{ID: 1}))
	require.NoError(t, c.Append(ctx, testRecord{ID: 2}))

	require.NoError(t, c.RemoveByID(ctx, 1))

	records, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, snowflake.ID(2), records[0].ID)

	// removing an absent id is a no-op
	require.NoError(t, c.RemoveByID(ctx, 42))
	records, err = c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestUpdateByID(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testRecord](storage.NewMemory(), KeyQuotes)
	require.NoError(t, c.Append(ctx, testRecord{ID: 1, Name: "before"}))

	updated, err := c.UpdateByID(ctx, 1, func(r *testRecord) { r.Name = "after" })
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)

	got, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)

	_, err = c.UpdateByID(ctx, 42, func(r *testRecord) { r.Name = "missing" })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	quotes := NewCollection[testRecord](backend, KeyQuotes)
	invoices := NewCollection[testRecord](backend, KeyInvoices)

	require.NoError(t, quotes.Append(ctx, testRecord{ID: 1, Name: "quote"}))

	others, err := invoices.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, others)

	require.NoError(t, invoices.RemoveByID(ctx, 1))
	kept, err := quotes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestListCorruptPayload(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	require.NoError(t, backend.Save(ctx, KeyQuotes, []byte("not json")))

	c := NewCollection[testRecord](backend, KeyQuotes)
	_, err := c.List(ctx)

	assert.True(t, storage.IsPersistence(err))
}
