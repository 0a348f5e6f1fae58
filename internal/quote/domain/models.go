// Package domain contains the quote record and service contract.
package domain

import (
	"github.com/bwmarrin/snowflake"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

// Status represents quote lifecycle states.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusInvoiced Status = "invoiced"
)

// Valid reports whether s is one of the enumerated quote statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusInvoiced:
		return true
	default:
		return false
	}
}

// Quote is a non-binding priced proposal sent to a prospective client.
type Quote struct {
	ID           snowflake.ID              `json:"id"`
	Type         documentdomain.RecordType `json:"type"`
	Number       string                    `json:"number"`
	Date         documentdomain.Date       `json:"date"`
	ValidUntil   documentdomain.Date       `json:"validUntil"`
	BusinessInfo documentdomain.Party      `json:"businessInfo"`
	ClientInfo   documentdomain.Party      `json:"clientInfo"`
	Items        []documentdomain.LineItem `json:"items"`
	Discount     float64                   `json:"discount"`
	Notes        string                    `json:"notes"`
	Subtotal     float64                   `json:"subtotal"`
	Total        float64                   `json:"total"`
	Status       Status                    `json:"status"`
}

func (q Quote) RecordID() snowflake.ID { return q.ID }
