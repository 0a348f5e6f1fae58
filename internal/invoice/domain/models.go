// Package domain contains the invoice record and service contract.
package domain

import (
	"github.com/bwmarrin/snowflake"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

// Status represents invoice payment states.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Valid reports whether s is one of the enumerated invoice statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}

// Invoice is a binding payment request, optionally derived from an
// approved quote. QuoteID, when set, is a non-owning back-reference to the
// source quote.
type Invoice struct {
	ID           snowflake.ID              `json:"id"`
	Type         documentdomain.RecordType `json:"type"`
	Number       string                    `json:"number"`
	Date         documentdomain.Date       `json:"date"`
	DueDate      documentdomain.Date       `json:"dueDate"`
	BusinessInfo documentdomain.Party      `json:"businessInfo"`
	ClientInfo   documentdomain.Party      `json:"clientInfo"`
	Items        []documentdomain.LineItem `json:"items"`
	Discount     float64                   `json:"discount"`
	Notes        string                    `json:"notes"`
	Subtotal     float64                   `json:"subtotal"`
	Total        float64                   `json:"total"`
	Status       Status                    `json:"status"`
	QuoteID      *snowflake.ID             `json:"quoteId,omitempty"`
}

func (i Invoice) RecordID() snowflake.ID { return i.ID }

// Draft holds invoice fields prepared from a quote but not yet persisted.
// Saving the draft through Create is what marks the source quote invoiced.
type Draft struct {
	Date         documentdomain.Date       `json:"date"`
	DueDate      documentdomain.Date       `json:"dueDate"`
	BusinessInfo documentdomain.Party      `json:"businessInfo"`
	ClientInfo   documentdomain.Party      `json:"clientInfo"`
	Items        []documentdomain.LineItem `json:"items"`
	Discount     float64                   `json:"discount"`
	Notes        string                    `json:"notes"`
	QuoteID      *snowflake.ID             `json:"quoteId,omitempty"`
}
