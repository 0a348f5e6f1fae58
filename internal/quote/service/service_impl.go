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

	quotes *store.Collection[quotedomain.Quote]
}

func NewService(p ServiceParam) quotedomain.Service {
	return &Service{
		log:     p.Log.Named("quote.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		metrics: p.Metrics,
		quotes:  store.NewCollection[quotedomain.Quote](p.Backend, store.KeyQuotes),
	}
}

func (s *Service) List(ctx context.Context) ([]quotedomain.Quote, error) {
	return s.quotes.List(ctx)
}

// ListApproved returns the quotes currently eligible for conversion into
// an invoice.
func (s *Service) ListApproved(ctx context.Context) ([]quotedomain.Quote, error) {
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return nil, err
	}
	approved := make([]quotedomain.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status == quotedomain.StatusApproved {
			approved = append(approved, q)
		}
	}
	return approved, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (quotedomain.Quote, error) {
	q, err := s.quotes.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return quotedomain.Quote{}, quotedomain.ErrNotFound
	}
	return q, err
}

// Create assigns id and number, forces the pending status and computes
// totals before appending the quote.
func (s *Service) Create(ctx context.Context, req quotedomain.CreateQuoteRequest) (quotedomain.Quote, error) {
	if err := documentdomain.ValidateDraft(req.BusinessInfo, req.ClientInfo, req.Items); err != nil {
		return quotedomain.Quote{}, err
	}

	number, err := numbering.Next(ctx, s.quotes, numbering.PrefixQuote)
	if err != nil {
		return quotedomain.Quote{}, err
	}

	totals := calc.Compute(req.Items, req.Discount)
	q := quotedomain.Quote{
		ID:           s.genID.Generate(),
		Type:         documentdomain.TypeQuote,
		Number:       number,
		Date:         defaultDate(req.Date, s.clock),
		ValidUntil:   req.ValidUntil,
		BusinessInfo: req.BusinessInfo,
		ClientInfo:   req.ClientInfo,
		Items:        req.Items,
		Discount:     req.Discount,
		Notes:        req.Notes,
		Subtotal:     totals.Subtotal,
		Total:        totals.Total,
		Status:       quotedomain.StatusPending,
	}

	if err := s.quotes.Append(ctx, q); err != nil {
		return quotedomain.Quote{}, err
	}

	s.metrics.RecordCreated(store.KeyQuotes)
	s.log.Info("quote created",
		zap.String("quote_id", q.ID.String()),
		zap.String("number", q.Number),
		zap.Float64("total", q.Total),
	)
	return q, nil
}

// SetStatus applies any valid status from any current state, with no
// transition guard; eligibility is the caller's concern.
func (s *Service) SetStatus(ctx context.Context, id snowflake.ID, status quotedomain.Status) (quotedomain.Quote, error) {
	if !status.Valid() {
		return quotedomain.Quote{}, quotedomain.ErrInvalidStatus
	}

	q, err := s.quotes.UpdateByID(ctx, id, func(q *quotedomain.Quote) {
		q.Status = status
	})
	if errors.Is(err, store.ErrNotFound) {
		return quotedomain.Quote{}, quotedomain.ErrNotFound
	}
	if err != nil {
		return quotedomain.Quote{}, err
	}

	s.metrics.StatusChanged(store.KeyQuotes, string(status))
	s.log.Info("quote status set",
		zap.String("quote_id", id.String()),
		zap.String("status", string(status)),
	)
	return q, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	if err := s.quotes.RemoveByID(ctx, id); err != nil {
		return err
	}
	s.metrics.RecordDeleted(store.KeyQuotes)
	s.log.Info("quote deleted", zap.String("quote_id", id.String()))
	return nil
}

func defaultDate(d documentdomain.Date, c clock.Clock) documentdomain.Date {
	if !d.IsZero() {
		return d
	}
	return documentdomain.DateOf(c.Now())
}
