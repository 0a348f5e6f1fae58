// Package pdf renders printable documents for quotes, invoices and the
// transactions report.
package pdf

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	invoicedomain "github.com/burnproductions/billingdesk/internal/invoice/domain"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
	summarydomain "github.com/burnproductions/billingdesk/internal/summary/domain"
)

type Provider interface {
	RenderQuote(ctx context.Context, q quotedomain.Quote) (io.Reader, error)
	RenderInvoice(ctx context.Context, inv invoicedomain.Invoice) (io.Reader, error)
	RenderTransactionsReport(ctx context.Context, sum summarydomain.TransactionSummary, feed []summarydomain.Transaction) (io.Reader, error)
}

// FormatMoney renders an amount as "R 1,234.56": symbol, space, two
// decimals, commas grouping the integer digits.
func FormatMoney(symbol string, amount float64) string {
	if math.IsNaN(amount) {
		amount = 0
	}
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return symbol + " " + b.String() + "." + fracPart
}
