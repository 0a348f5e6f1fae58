// Package domain contains the expense record and service contract.
package domain

import (
	"github.com/bwmarrin/snowflake"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

// Status represents expense payment states. Overdue and cancelled are set
// directly at creation or edit time; the manual mark-paid action forces
// paid from any state.
type Status string

const (
	StatusUnpaid    Status = "unpaid"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the enumerated expense statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusUnpaid, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	default:
		return false
	}
}

// Expense is an outgoing cost owed by the business to a vendor. Its total
// is the flat amount; no line items or discount apply.
type Expense struct {
	ID          snowflake.ID              `json:"id"`
	Type        documentdomain.RecordType `json:"type"`
	Number      string                    `json:"number"`
	Date        documentdomain.Date       `json:"date"`
	DueDate     documentdomain.Date       `json:"dueDate"`
	Vendor      string                    `json:"vendor"`
	Category    string                    `json:"category"`
	Description string                    `json:"description"`
	Amount      float64                   `json:"amount"`
	Status      Status                    `json:"status"`
	Notes       string                    `json:"notes"`
}

func (e Expense) RecordID() snowflake.ID { return e.ID }

// Summary buckets the recorded expenses by payment status.
type Summary struct {
	Total   float64 `json:"total"`
	Unpaid  float64 `json:"unpaid"`
	Overdue float64 `json:"overdue"`
	Paid    float64 `json:"paid"`
}
