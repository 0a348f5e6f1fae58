package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

var (
	ErrNotFound      = errors.New("expense_not_found")
	ErrInvalidStatus = errors.New("invalid_expense_status")
)

// CreateExpenseRequest carries the operator-entered fields for a new
// expense. Number is assigned by the service; Status defaults to unpaid.
type CreateExpenseRequest struct {
	Date        documentdomain.Date `json:"date"`
	DueDate     documentdomain.Date `json:"dueDate"`
	Vendor      string              `json:"vendor"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Amount      float64             `json:"amount"`
	Status      Status              `json:"status"`
	Notes       string              `json:"notes"`
}

type Service interface {
	List(ctx context.Context) ([]Expense, error)
	GetByID(ctx context.Context, id snowflake.ID) (Expense, error)
	Create(ctx context.Context, req CreateExpenseRequest) (Expense, error)
	SetStatus(ctx context.Context, id snowflake.ID, status Status) (Expense, error)
	MarkPaid(ctx context.Context, id snowflake.ID) (Expense, error)
	Delete(ctx context.Context, id snowflake.ID) error
	Summary(ctx context.Context) (Summary, error)
}
