package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

// CreateQuoteRequest carries the operator-entered draft fields. Any
// submitted status is ignored; new quotes always start pending.
type CreateQuoteRequest struct {
	Date         documentdomain.Date       `json:"date"`
	ValidUntil   documentdomain.Date       `json:"validUntil"`
	BusinessInfo documentdomain.Party      `json:"businessInfo"`
	ClientInfo   documentdomain.Party      `json:"clientInfo"`
	Items        []documentdomain.LineItem `json:"items"`
	Discount     float64                   `json:"discount"`
	Notes        string                    `json:"notes"`
	Status       Status                    `json:"status,omitempty"`
}

type Service interface {
	List(ctx context.Context) ([]Quote, error)
	ListApproved(ctx context.Context) ([]Quote, error)
	GetByID(ctx context.Context, id snowflake.ID) (Quote, error)
	Create(ctx context.Context, req CreateQuoteRequest) (Quote, error)
	SetStatus(ctx context.Context, id snowflake.ID, status Status) (Quote, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrNotFound      = errors.New("quote_not_found")
	ErrInvalidStatus = errors.New("invalid_quote_status")
)
