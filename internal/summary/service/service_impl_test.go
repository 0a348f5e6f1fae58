package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	expensedomain "github.com/burnproductions/billingdesk/internal/expense/domain"
	invoicedomain "github.com/burnproductions/billingdesk/internal/invoice/domain"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
	"github.com/burnproductions/billingdesk/internal/storage"
	"github.com/burnproductions/billingdesk/internal/store"
	summarydomain "github.com/burnproductions/billingdesk/internal/summary/domain"
)

func seededService(t *testing.T) summarydomain.Service {
	t.Helper()
	ctx := context.Background()
	backend := storage.NewMemory()

	quotes := store.NewCollection[quotedomain.Quote](backend, store.KeyQuotes)
	invoices := store.NewCollection[invoicedomain.Invoice](backend, store.KeyInvoices)
	expenses := store.NewCollection[expensedomain.Expense](backend, store.KeyExpenses)

	require.NoError(t, quotes.Append(ctx, quotedomain.Quote{
		ID: 1, Type: documentdomain.TypeQuote, Number: "Q0001",
		ClientInfo: documentdomain.Party{Name: "Acme Ltd"},
		Date:       documentdomain.NewDate(2026, time.March, 1),
		Total:      100, Status: quotedomain.StatusPending,
	}))
	require.NoError(t, quotes.Append(ctx, quotedomain.Quote{
		ID: 2, Type: documentdomain.TypeQuote, Number: "Q0002",
		ClientInfo: documentdomain.Party{Name: "Globex"},
		Date:       documentdomain.NewDate(2026, time.March, 3),
		Total:      999, Status: quotedomain.StatusInvoiced,
	}))
	require.NoError(t, invoices.Append(ctx, invoicedomain.Invoice{
		ID: 3, Type: documentdomain.TypeInvoice, Number: "INV0001",
		ClientInfo: documentdomain.Party{Name: "Globex"},
		Date:       documentdomain.NewDate(2026, time.March, 3),
		Total:      500, Status: invoicedomain.StatusPaid,
	}))
	require.NoError(t, invoices.Append(ctx, invoicedomain.Invoice{
		ID: 4, Type: documentdomain.TypeInvoice, Number: "INV0002",
		ClientInfo: documentdomain.Party{Name: "Initech"},
		Date:       documentdomain.NewDate(2026, time.March, 5),
		Total:      200, Status: invoicedomain.StatusPending,
	}))
	require.NoError(t, expenses.Append(ctx, expensedomain.Expense{
		ID: 5, Type: documentdomain.TypeExpense, Number: "EXP0001",
		Vendor: "Camera Hire Co",
		Date:   documentdomain.NewDate(2026, time.March, 2),
		Amount: 50, Status: expensedomain.StatusUnpaid,
	}))
	require.NoError(t, expenses.Append(ctx, expensedomain.Expense{
		ID: 6, Type: documentdomain.TypeExpense, Number: "EXP0002",
		Vendor: "Studio Rent",
		Date:   documentdomain.NewDate(2026, time.March, 5),
		Amount: 30, Status: expensedomain.StatusPaid,
	}))
	require.NoError(t, expenses.Append(ctx, expensedomain.Expense{
		ID: 7, Type: documentdomain.TypeExpense, Number: "EXP0003",
		Vendor: "Catering",
		Date:   documentdomain.NewDate(2026, time.March, 6),
		Amount: 20, Status: expensedomain.StatusCancelled,
	}))

	return NewService(ServiceParam{Backend: backend, Log: zap.NewNop()})
}

func TestDashboard(t *testing.T) {
	svc := seededService(t)

	sum, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.TotalQuotes)
	assert.Equal(t, 2, sum.TotalInvoices)
	assert.Equal(t, 500.0, sum.TotalRevenue)
	// pending invoice 200 plus pending quote 100
	assert.Equal(t, 300.0, sum.Outstanding)
}

func TestAggregatesAreIdempotent(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	first, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	second, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	cashA, err := svc.CashPosition(ctx)
	require.NoError(t, err)
	cashB, err := svc.CashPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, cashA, cashB)
}

func TestCashPosition(t *testing.T) {
	svc := seededService(t)

	sum, err := svc.CashPosition(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 500.0, sum.TotalIncome)
	// every expense counts, whatever its status
	assert.Equal(t, 100.0, sum.TotalExpenses)
	assert.Equal(t, 400.0, sum.NetProfit)
	assert.Equal(t, 300.0, sum.Outstanding)
}

func TestFeedSortedNewestFirst(t *testing.T) {
	svc := seededService(t)

	feed, err := svc.Feed(context.Background(), summarydomain.FeedFilter{})
	require.NoError(t, err)
	require.Len(t, feed, 7)

	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i-1].Date.Before(feed[i].Date.Time),
			"feed out of order at %d: %s before %s", i, feed[i-1].Date, feed[i].Date)
	}

	// stable merge: records sharing 2026-03-05 keep invoice before expense
	assert.Equal(t, "INV0002", feed[1].Number)
	assert.Equal(t, "EXP0002", feed[2].Number)
}

func TestFeedFilters(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	byType, err := svc.Feed(ctx, summarydomain.FeedFilter{Type: documentdomain.TypeExpense})
	require.NoError(t, err)
	assert.Len(t, byType, 3)

	byStatus, err := svc.Feed(ctx, summarydomain.FeedFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	ranged, err := svc.Feed(ctx, summarydomain.FeedFilter{
		From: documentdomain.NewDate(2026, time.March, 3),
		To:   documentdomain.NewDate(2026, time.March, 5),
	})
	require.NoError(t, err)
	assert.Len(t, ranged, 4)
}

func TestDocumentsSortedByIDDesc(t *testing.T) {
	svc := seededService(t)

	docs, err := svc.Documents(context.Background(), summarydomain.DocumentFilter{})
	require.NoError(t, err)
	require.Len(t, docs, 4)

	require.NotNil(t, docs[0].Invoice)
	assert.Equal(t, snowflake.ID(4), docs[0].Invoice.ID)
	require.NotNil(t, docs[3].Quote)
	assert.Equal(t, snowflake.ID(1), docs[3].Quote.ID)
}

func TestDocumentsFilterAndSearch(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	onlyQuotes, err := svc.Documents(ctx, summarydomain.DocumentFilter{Type: documentdomain.TypeQuote})
	require.NoError(t, err)
	assert.Len(t, onlyQuotes, 2)

	byClient, err := svc.Documents(ctx, summarydomain.DocumentFilter{Search: "globex"})
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	byNumber, err := svc.Documents(ctx, summarydomain.DocumentFilter{Search: "inv0002"})
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	require.NotNil(t, byNumber[0].Invoice)
	assert.Equal(t, "INV0002", byNumber[0].Invoice.Number)
}
