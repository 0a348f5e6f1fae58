package pdf

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/burnproductions/billingdesk/internal/config"
	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
	summarydomain "github.com/burnproductions/billingdesk/internal/summary/domain"
)

func newTestProvider() Provider {
	return New(appconfig.NewStaticProfileHolder(appconfig.DefaultProfile()), nil)
}

func TestRenderQuoteProducesPDF(t *testing.T) {
	p := newTestProvider()

	r, err := p.RenderQuote(context.Background(), quotedomain.Quote{
		Number:       "Q0001",
		Date:         documentdomain.NewDate(2026, time.March, 10),
		ValidUntil:   documentdomain.NewDate(2026, time.April, 10),
		BusinessInfo: documentdomain.Party{Name: "Burn Productions", Email: "hello@burn.example"},
		ClientInfo:   documentdomain.Party{Name: "Acme Ltd"},
		Items: []documentdomain.LineItem{
			{Description: "Video shoot", Quantity: 2, Price: 1500},
		},
		Discount: 10,
		Subtotal: 3000,
		Total:    2700,
		Notes:    "50% deposit",
		Status:   quotedomain.StatusPending,
	})
	require.NoError(t, err)

	doc, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.True(t, len(doc) > 4 && string(doc[:4]) == "%PDF")
}

func TestRenderTransactionsReportProducesPDF(t *testing.T) {
	p := newTestProvider()

	r, err := p.RenderTransactionsReport(context.Background(),
		summarydomain.TransactionSummary{TotalIncome: 500, TotalExpenses: 100, NetProfit: 400, Outstanding: 300},
		[]summarydomain.Transaction{
			{Number: "INV0001", Party: "Globex", Date: documentdomain.NewDate(2026, time.March, 3), Total: 500, Status: "paid", Type: documentdomain.TypeInvoice},
		},
	)
	require.NoError(t, err)

	doc, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.True(t, len(doc) > 4 && string(doc[:4]) == "%PDF")
}
