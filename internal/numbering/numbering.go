// Package numbering derives human-readable document numbers.
package numbering

import (
	"context"
	"fmt"
)

// Document number prefixes per collection.
const (
	PrefixQuote   = "Q"
	PrefixInvoice = "INV"
	PrefixExpense = "EXP"
)

// Counter reports how many records a collection currently holds.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Next returns prefix + zero-padded(count+1, 4) for the collection.
//
// The scheme is count-based, not max-based: deleting a record and then
// creating a new one reproduces an already-used number, which may still be
// cited by previously generated documents. Callers that need uniqueness
// across deletions should key on the record id instead.
func Next(ctx context.Context, collection Counter, prefix string) (string, error) {
	count, err := collection.Count(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}
