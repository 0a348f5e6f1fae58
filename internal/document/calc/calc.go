// Package calc computes document totals from line items.
package calc

import (
	"math"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

// Totals is the aggregation result for one document.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
}

// Compute aggregates items and applies a percentage discount. Malformed
// item fields (negative or NaN quantity/price) are treated as zero rather
// than rejected; no rounding is applied.
func Compute(items []documentdomain.LineItem, discountPercent float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += clampNonNegative(item.Quantity) * clampNonNegative(item.Price)
	}

	if math.IsNaN(discountPercent) {
		discountPercent = 0
	}
	discountAmount := subtotal * (discountPercent / 100)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
	}
}

func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
