// Package domain defines the read-side aggregates computed across the
// quote, invoice and expense collections.
package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	invoicedomain "github.com/burnproductions/billingdesk/internal/invoice/domain"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
)

// DashboardSummary is the header card on the dashboard.
type DashboardSummary struct {
	TotalQuotes   int     `json:"totalQuotes"`
	TotalInvoices int     `json:"totalInvoices"`
	TotalRevenue  float64 `json:"totalRevenue"`
	Outstanding   float64 `json:"outstanding"`
}

// TransactionSummary is the cash position over the whole history: income
// from paid invoices, all expenses regardless of status, and the amounts
// still pending on either side.
type TransactionSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	Outstanding   float64 `json:"outstanding"`
}

// Transaction is a uniform projection of a quote, invoice or expense for
// the merged activity feed.
type Transaction struct {
	ID      snowflake.ID              `json:"id"`
	Type    documentdomain.RecordType `json:"type"`
	Number  string                    `json:"number"`
	Party   string                    `json:"party"`
	Date    documentdomain.Date       `json:"date"`
	DueDate documentdomain.Date       `json:"dueDate"`
	Total   float64                   `json:"total"`
	Status  string                    `json:"status"`
}

// FeedFilter narrows the merged feed. Zero values mean no filtering on
// that axis; From and To are inclusive.
type FeedFilter struct {
	Type   documentdomain.RecordType
	Status string
	From   documentdomain.Date
	To     documentdomain.Date
}

// Document is either a quote or an invoice in the documents view.
type Document struct {
	Quote   *quotedomain.Quote     `json:"quote,omitempty"`
	Invoice *invoicedomain.Invoice `json:"invoice,omitempty"`
}

// DocumentFilter narrows the documents view. Search matches the record
// number or client name, case-insensitively.
type DocumentFilter struct {
	Type   documentdomain.RecordType
	Search string
}

type Service interface {
	Dashboard(ctx context.Context) (DashboardSummary, error)
	CashPosition(ctx context.Context) (TransactionSummary, error)
	Feed(ctx context.Context, filter FeedFilter) ([]Transaction, error)
	Documents(ctx context.Context, filter DocumentFilter) ([]Document, error)
}
