package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

// CreateInvoiceRequest carries the operator-entered invoice fields. Status
// is operator-selected at creation time and defaults to pending.
type CreateInvoiceRequest struct {
	Date         documentdomain.Date       `json:"date"`
	DueDate      documentdomain.Date       `json:"dueDate"`
	BusinessInfo documentdomain.Party      `json:"businessInfo"`
	ClientInfo   documentdomain.Party      `json:"clientInfo"`
	Items        []documentdomain.LineItem `json:"items"`
	Discount     float64                   `json:"discount"`
	Notes        string                    `json:"notes"`
	Status       Status                    `json:"status,omitempty"`
	QuoteID      *snowflake.ID             `json:"quoteId,omitempty"`
}

type Service interface {
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id snowflake.ID) (Invoice, error)
	// ConvertQuote prepares an unsaved invoice draft from a quote. Nothing
	// is persisted and the quote is not mutated until the draft is saved.
	ConvertQuote(ctx context.Context, quoteID snowflake.ID) (Draft, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error)
	SetStatus(ctx context.Context, id snowflake.ID, status Status) (Invoice, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrNotFound             = errors.New("invoice_not_found")
	ErrInvalidStatus        = errors.New("invalid_invoice_status")
	ErrQuoteAlreadyInvoiced = errors.New("quote_already_invoiced")
)
