package numbering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	count int
	err   error
}

func (s stubCounter) Count(context.Context) (int, error) { return s.count, s.err }

func TestNext(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		prefix string
		want   string
	}{
		{name: "first quote", count: 0, prefix: PrefixQuote, want: "Q0001"},
		{name: "tenth invoice", count: 9, prefix: PrefixInvoice, want: "INV0010"},
		{name: "expense", count: 2, prefix: PrefixExpense, want: "EXP0003"},
		{name: "padding overflow", count: 9999, prefix: PrefixQuote, want: "Q10000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Next(context.Background(), stubCounter{count: tc.count}, tc.prefix)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextPropagatesCountError(t *testing.T) {
	wantErr := errors.New("backend down")

	_, err := Next(context.Background(), stubCounter{err: wantErr}, PrefixQuote)

	assert.ErrorIs(t, err, wantErr)
}

func TestNextReusesNumberAfterDeletion(t *testing.T) {
	// Count-based numbering: three records, delete one, next number
	// repeats the previously issued third number.
	got, err := Next(context.Background(), stubCounter{count: 2}, PrefixQuote)
	require.NoError(t, err)
	assert.Equal(t, "Q0003", got)
}
