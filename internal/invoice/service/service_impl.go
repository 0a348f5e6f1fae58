package service

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/burnproductions/billingdesk/internal/clock"
	"github.com/burnproductions/billingdesk/internal/document/calc"
	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	invoicedomain "github.com/burnproductions/billingdesk/internal/invoice/domain"
	"github.com/burnproductions/billingdesk/internal/numbering"
	"github.com/burnproductions/billingdesk/internal/observability/metrics"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
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
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	metrics *metrics.Metrics

	invoices *store.Collection[invoicedomain.Invoice]
	quotes   *store.Collection[quotedomain.Quote]
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		metrics:  p.Metrics,
		invoices: store.NewCollection[invoicedomain.Invoice](p.Backend, store.KeyInvoices),
		quotes:   store.NewCollection[quotedomain.Quote](p.Backend, store.KeyQuotes),
	}
}

func (s *Service) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (invoicedomain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return invoicedomain.Invoice{}, invoicedomain.ErrNotFound
	}
	return inv, err
}

// ConvertQuote copies the quote's parties, items, discount and notes into
// an unsaved draft stamped with the quote id. The quote keeps its current
// status until the draft is saved through Create.
func (s *Service) ConvertQuote(ctx context.Context, quoteID snowflake.ID) (invoicedomain.Draft, error) {
	q, err := s.quotes.GetByID(ctx, quoteID)
	if errors.Is(err, store.ErrNotFound) {
		return invoicedomain.Draft{}, quotedomain.ErrNotFound
	}
	if err != nil {
		return invoicedomain.Draft{}, err
	}
	if q.Status == quotedomain.StatusInvoiced {
		return invoicedomain.Draft{}, invoicedomain.ErrQuoteAlreadyInvoiced
	}

	id := q.ID
	return invoicedomain.Draft{
		Date:         documentdomain.DateOf(s.clock.Now()),
		BusinessInfo: q.BusinessInfo,
		ClientInfo:   q.ClientInfo,
		Items:        q.Items,
		Discount:     q.Discount,
		Notes:        q.Notes,
		QuoteID:      &id,
	}, nil
}

// Create assigns id and number, computes totals and appends the invoice.
// When the request references a quote, the append and the quote's
// transition to invoiced form one logical operation: the invoice is
// written first, and only on success is the quote updated. A failure
// between the two writes leaves the invoice persisted and the quote
// unchanged; callers reconcile rather than roll back.
func (s *Service) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.Invoice, error) {
	if err := documentdomain.ValidateDraft(req.BusinessInfo, req.ClientInfo, req.Items); err != nil {
		return invoicedomain.Invoice{}, err
	}

	status := req.Status
	if status == "" {
		status = invoicedomain.StatusPending
	}
	if !status.Valid() {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvalidStatus
	}

	if req.QuoteID != nil {
		q, err := s.quotes.GetByID(ctx, *req.QuoteID)
		if errors.Is(err, store.ErrNotFound) {
			return invoicedomain.Invoice{}, quotedomain.ErrNotFound
		}
		if err != nil {
			return invoicedomain.Invoice{}, err
		}
		if q.Status == quotedomain.StatusInvoiced {
			return invoicedomain.Invoice{}, invoicedomain.ErrQuoteAlreadyInvoiced
		}
	}

	number, err := numbering.Next(ctx, s.invoices, numbering.PrefixInvoice)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	totals := calc.Compute(req.Items, req.Discount)
	inv := invoicedomain.Invoice{
		ID:           s.genID.Generate(),
		Type:         documentdomain.TypeInvoice,
		Number:       number,
		Date:         defaultDate(req.Date, s.clock),
		DueDate:      req.DueDate,
		BusinessInfo: req.BusinessInfo,
		ClientInfo:   req.ClientInfo,
		Items:        req.Items,
		Discount:     req.Discount,
		Notes:        req.Notes,
		Subtotal:     totals.Subtotal,
		Total:        totals.Total,
		Status:       status,
		QuoteID:      req.QuoteID,
	}

	if err := s.invoices.Append(ctx, inv); err != nil {
		return invoicedomain.Invoice{}, err
	}
	s.metrics.RecordCreated(store.KeyInvoices)

	if req.QuoteID != nil {
		_, err := s.quotes.UpdateByID(ctx, *req.QuoteID, func(q *quotedomain.Quote) {
			q.Status = quotedomain.StatusInvoiced
		})
		if err != nil {
			s.log.Error("invoice saved but quote not marked invoiced",
				zap.String("invoice_id", inv.ID.String()),
				zap.String("quote_id", req.QuoteID.String()),
				zap.Error(err),
			)
			return inv, err
		}
		s.metrics.StatusChanged(store.KeyQuotes, string(quotedomain.StatusInvoiced))
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("number", inv.Number),
		zap.Float64("total", inv.Total),
	)
	return inv, nil
}

// SetStatus applies any valid status from any current state, with no
// transition guard.
func (s *Service) SetStatus(ctx context.Context, id snowflake.ID, status invoicedomain.Status) (invoicedomain.Invoice, error) {
	if !status.Valid() {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvalidStatus
	}

	inv, err := s.invoices.UpdateByID(ctx, id, func(inv *invoicedomain.Invoice) {
		inv.Status = status
	})
	if errors.Is(err, store.ErrNotFound) {
		return invoicedomain.Invoice{}, invoicedomain.ErrNotFound
	}
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	s.metrics.StatusChanged(store.KeyInvoices, string(status))
	s.log.Info("invoice status set",
		zap.String("invoice_id", id.String()),
		zap.String("status", string(status)),
	)
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	if err := s.invoices.RemoveByID(ctx, id); err != nil {
		return err
	}
	s.metrics.RecordDeleted(store.KeyInvoices)
	s.log.Info("invoice deleted", zap.String("invoice_id", id.String()))
	return nil
}

func defaultDate(d documentdomain.Date, c clock.Clock) documentdomain.Date {
	if !d.IsZero() {
		return d
	}
	return documentdomain.DateOf(c.Now())
}
