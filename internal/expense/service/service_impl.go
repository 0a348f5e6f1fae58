package service

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/burnproductions/billingdesk/internal/clock"
	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	expensedomain "github.com/burnproductions/billingdesk/internal/expense/domain"
	"github.com/burnproductions/billingdesk/internal/numbering"
	"github.com/burnproductions/billingdesk/internal/observability/metrics"
	"github.com/burnproductions/billingdesk/internal/storage"
	"github.com/burnproductions/billingdesk/internal/store"
)

type ServiceParam struct {
	fx.In

	Backend storage.Backend
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	expenses *store.Collection[expensedomain.Expense]
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	metrics  *metrics.Metrics
}

func NewService(p ServiceParam) expensedomain.Service {
	return &Service{
		expenses: store.NewCollection[expensedomain.Expense](p.Backend, store.KeyExpenses),
		log:      p.Log.Named("expense.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		metrics:  p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]expensedomain.Expense, error) {
	return s.expenses.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (expensedomain.Expense, error) {
	exp, err := s.expenses.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return expensedomain.Expense{}, expensedomain.ErrNotFound
	}
	return exp, err
}

func (s *Service) Create(ctx context.Context, req expensedomain.CreateExpenseRequest) (expensedomain.Expense, error) {
	if req.Vendor == "" {
		return expensedomain.Expense{}, &documentdomain.ValidationError{Missing: []string{"vendor"}}
	}

	number, err := numbering.Next(ctx, s.expenses, numbering.PrefixExpense)
	if err != nil {
		return expensedomain.Expense{}, err
	}

	status := req.Status
	if status == "" {
		status = expensedomain.StatusUnpaid
	}
	if !status.Valid() {
		return expensedomain.Expense{}, expensedomain.ErrInvalidStatus
	}

	exp := expensedomain.Expense{
		ID:          s.genID.Generate(),
		Type:        documentdomain.TypeExpense,
		Number:      number,
		Date:        defaultDate(req.Date, s.clock),
		DueDate:     req.DueDate,
		Vendor:      req.Vendor,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      status,
		Notes:       req.Notes,
	}

	if err := s.expenses.Append(ctx, exp); err != nil {
		return expensedomain.Expense{}, err
	}

	s.metrics.RecordCreated(store.KeyExpenses)
	s.log.Info("expense created",
		zap.String("number", exp.Number),
		zap.String("vendor", exp.Vendor),
		zap.Float64("amount", exp.Amount),
	)
	return exp, nil
}

func (s *Service) SetStatus(ctx context.Context, id snowflake.ID, status expensedomain.Status) (expensedomain.Expense, error) {
	if !status.Valid() {
		return expensedomain.Expense{}, expensedomain.ErrInvalidStatus
	}

	exp, err := s.expenses.UpdateByID(ctx, id, func(e *expensedomain.Expense) {
		e.Status = status
	})
	if errors.Is(err, store.ErrNotFound) {
		return expensedomain.Expense{}, expensedomain.ErrNotFound
	}
	if err != nil {
		return expensedomain.Expense{}, err
	}

	s.metrics.StatusChanged(store.KeyExpenses, string(status))
	return exp, nil
}

// MarkPaid forces the paid status regardless of the current one.
func (s *Service) MarkPaid(ctx context.Context, id snowflake.ID) (expensedomain.Expense, error) {
	return s.SetStatus(ctx, id, expensedomain.StatusPaid)
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	if err := s.expenses.RemoveByID(ctx, id); err != nil {
		return err
	}
	s.metrics.RecordDeleted(store.KeyExpenses)
	return nil
}

// Summary totals every recorded expense and buckets unpaid, overdue and
// paid amounts by status. Cancelled expenses still count toward Total.
func (s *Service) Summary(ctx context.Context) (expensedomain.Summary, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return expensedomain.Summary{}, err
	}

	var sum expensedomain.Summary
	for _, exp := range expenses {
		sum.Total += exp.Amount
		switch exp.Status {
		case expensedomain.StatusUnpaid:
			sum.Unpaid += exp.Amount
		case expensedomain.StatusOverdue:
			sum.Overdue += exp.Amount
		case expensedomain.StatusPaid:
			sum.Paid += exp.Amount
		}
	}
	return sum, nil
}

func defaultDate(d documentdomain.Date, c clock.Clock) documentdomain.Date {
	if d.IsZero() {
		return documentdomain.DateOf(c.Now())
	}
	return d
}
