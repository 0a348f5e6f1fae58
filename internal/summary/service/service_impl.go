package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	expensedomain "github.com/burnproductions/billingdesk/internal/expense/domain"
	invoicedomain "github.com/burnproductions/billingdesk/internal/invoice/domain"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
	"github.com/burnproductions/billingdesk/internal/storage"
	"github.com/burnproductions/billingdesk/internal/store"
	summarydomain "github.com/burnproductions/billingdesk/internal/summary/domain"
)

type ServiceParam struct {
	fx.In

	Backend storage.Backend
	Log     *zap.Logger
}

type Service struct {
	quotes   *store.Collection[quotedomain.Quote]
	invoices *store.Collection[invoicedomain.Invoice]
	expenses *store.Collection[expensedomain.Expense]
	log      *zap.Logger
}

func NewService(p ServiceParam) summarydomain.Service {
	return &Service{
		quotes:   store.NewCollection[quotedomain.Quote](p.Backend, store.KeyQuotes),
		invoices: store.NewCollection[invoicedomain.Invoice](p.Backend, store.KeyInvoices),
		expenses: store.NewCollection[expensedomain.Expense](p.Backend, store.KeyExpenses),
		log:      p.Log.Named("summary.service"),
	}
}

func (s *Service) Dashboard(ctx context.Context) (summarydomain.DashboardSummary, error) {
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return summarydomain.DashboardSummary{}, err
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return summarydomain.DashboardSummary{}, err
	}
	return ComputeDashboard(quotes, invoices), nil
}

func (s *Service) CashPosition(ctx context.Context) (summarydomain.TransactionSummary, error) {
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return summarydomain.TransactionSummary{}, err
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return summarydomain.TransactionSummary{}, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return summarydomain.TransactionSummary{}, err
	}
	return ComputeCashPosition(quotes, invoices, expenses), nil
}

func (s *Service) Feed(ctx context.Context, filter summarydomain.FeedFilter) ([]summarydomain.Transaction, error) {
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildFeed(quotes, invoices, expenses, filter), nil
}

func (s *Service) Documents(ctx context.Context, filter summarydomain.DocumentFilter) ([]summarydomain.Document, error) {
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDocuments(quotes, invoices, filter), nil
}

// ComputeDashboard counts both collections and sums revenue from paid
// invoices. Outstanding is pending invoices plus pending quotes.
func ComputeDashboard(quotes []quotedomain.Quote, invoices []invoicedomain.Invoice) summarydomain.DashboardSummary {
	sum := summarydomain.DashboardSummary{
		TotalQuotes:   len(quotes),
		TotalInvoices: len(invoices),
	}
	for _, inv := range invoices {
		switch inv.Status {
		case invoicedomain.StatusPaid:
			sum.TotalRevenue += inv.Total
		case invoicedomain.StatusPending:
			sum.Outstanding += inv.Total
		}
	}
	for _, q := range quotes {
		if q.Status == quotedomain.StatusPending {
			sum.Outstanding += q.Total
		}
	}
	return sum
}

// ComputeCashPosition derives income from paid invoices and counts every
// expense regardless of status.
func ComputeCashPosition(quotes []quotedomain.Quote, invoices []invoicedomain.Invoice, expenses []expensedomain.Expense) summarydomain.TransactionSummary {
	var sum summarydomain.TransactionSummary
	for _, inv := range invoices {
		switch inv.Status {
		case invoicedomain.StatusPaid:
			sum.TotalIncome += inv.Total
		case invoicedomain.StatusPending:
			sum.Outstanding += inv.Total
		}
	}
	for _, q := range quotes {
		if q.Status == quotedomain.StatusPending {
			sum.Outstanding += q.Total
		}
	}
	for _, exp := range expenses {
		sum.TotalExpenses += exp.Amount
	}
	sum.NetProfit = sum.TotalIncome - sum.TotalExpenses
	return sum
}

// BuildFeed merges the three collections into one projection sorted by
// date, newest first. The sort is stable so records sharing a date keep
// the quote, invoice, expense merge order.
func BuildFeed(quotes []quotedomain.Quote, invoices []invoicedomain.Invoice, expenses []expensedomain.Expense, filter summarydomain.FeedFilter) []summarydomain.Transaction {
	feed := make([]summarydomain.Transaction, 0, len(quotes)+len(invoices)+len(expenses))
	for _, q := range quotes {
		feed = append(feed, summarydomain.Transaction{
			ID:      q.ID,
			Type:    q.Type,
			Number:  q.Number,
			Party:   q.ClientInfo.Name,
			Date:    q.Date,
			DueDate: q.ValidUntil,
			Total:   q.Total,
			Status:  string(q.Status),
		})
	}
	for _, inv := range invoices {
		feed = append(feed, summarydomain.Transaction{
			ID:      inv.ID,
			Type:    inv.Type,
			Number:  inv.Number,
			Party:   inv.ClientInfo.Name,
			Date:    inv.Date,
			DueDate: inv.DueDate,
			Total:   inv.Total,
			Status:  string(inv.Status),
		})
	}
	for _, exp := range expenses {
		feed = append(feed, summarydomain.Transaction{
			ID:      exp.ID,
			Type:    exp.Type,
			Number:  exp.Number,
			Party:   exp.Vendor,
			Date:    exp.Date,
			DueDate: exp.DueDate,
			Total:   exp.Amount,
			Status:  string(exp.Status),
		})
	}

	filtered := feed[:0]
	for _, tx := range feed {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		if !filter.From.IsZero() && tx.Date.Before(filter.From.Time) {
			continue
		}
		if !filter.To.IsZero() && tx.Date.After(filter.To.Time) {
			continue
		}
		filtered = append(filtered, tx)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date.Time)
	})
	return filtered
}

// BuildDocuments lists quotes and invoices together, newest id first.
// Search matches the number or client name, case-insensitively.
func BuildDocuments(quotes []quotedomain.Quote, invoices []invoicedomain.Invoice, filter summarydomain.DocumentFilter) []summarydomain.Document {
	docs := make([]summarydomain.Document, 0, len(quotes)+len(invoices))
	if filter.Type == "" || filter.Type == documentdomain.TypeQuote {
		for i := range quotes {
			q := quotes[i]
			if !matchesSearch(filter.Search, q.Number, q.ClientInfo.Name) {
				continue
			}
			docs = append(docs, summarydomain.Document{Quote: &q})
		}
	}
	if filter.Type == "" || filter.Type == documentdomain.TypeInvoice {
		for i := range invoices {
			inv := invoices[i]
			if !matchesSearch(filter.Search, inv.Number, inv.ClientInfo.Name) {
				continue
			}
			docs = append(docs, summarydomain.Document{Invoice: &inv})
		}
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return documentID(docs[i]) > documentID(docs[j])
	})
	return docs
}

func documentID(d summarydomain.Document) int64 {
	if d.Quote != nil {
		return int64(d.Quote.ID)
	}
	return int64(d.Invoice.ID)
}

func matchesSearch(search, number, client string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(number), search) ||
		strings.Contains(strings.ToLower(client), search)
}
