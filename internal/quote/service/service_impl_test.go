package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/burnproductions/billingdesk/internal/clock"
	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
	"github.com/burnproductions/billingdesk/internal/storage"
)

func newTestService(t *testing.T) quotedomain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		Backend: storage.NewMemory(),
		Log:     zap.NewNop(),
		GenID:   node,
		Clock:   clock.NewFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)),
	})
}

func validRequest() quotedomain.CreateQuoteRequest {
	return quotedomain.CreateQuoteRequest{
		BusinessInfo: documentdomain.Party{Name: "Burn Productions"},
		ClientInfo:   documentdomain.Party{Name: "Acme Ltd"},
		Items: []documentdomain.LineItem{
			{Description: "Video shoot", Quantity: 2, Price: 1500},
		},
		Discount: 10,
	}
}

func TestCreateAssignsNumberAndTotals(t *testing.T) {
	svc := newTestService(t)

	q, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Q0001", q.Number)
	assert.Equal(t, documentdomain.TypeQuote, q.Type)
	assert.Equal(t, 3000.0, q.Subtotal)
	assert.Equal(t, 2700.0, q.Total)
	assert.NotZero(t, q.ID)
	assert.Equal(t, "2026-03-10", q.Date.String())

	second, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Q0002", second.Number)
}

func TestCreateForcesPendingStatus(t *testing.T) {
	svc := newTestService(t)

	req := validRequest()
	req.Status = quotedomain.StatusApproved

	q, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, quotedomain.StatusPending, q.Status)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	req := validRequest()
	req.ClientInfo.Name = ""
	req.Items = nil

	_, err := svc.Create(context.Background(), req)

	vErr := documentdomain.AsValidation(err)
	require.NotNil(t, vErr)
	assert.Contains(t, vErr.Missing, "clientInfo.name")
	assert.Contains(t, vErr.Missing, "items")
}

func TestSetStatusIsPermissive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	q, err = svc.SetStatus(ctx, q.ID, quotedomain.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, quotedomain.StatusRejected, q.Status)

	// no transition guard: rejected back to approved is allowed
	q, err = svc.SetStatus(ctx, q.ID, quotedomain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, quotedomain.StatusApproved, q.Status)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, q.ID, quotedomain.Status("archived"))
	assert.ErrorIs(t, err, quotedomain.ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, snowflake.ID(12345), quotedomain.StatusApproved)
	assert.ErrorIs(t, err, quotedomain.ErrNotFound)
}

func TestListApproved(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, first.ID, quotedomain.StatusApproved)
	require.NoError(t, err)

	approved, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, q.ID))

	_, err = svc.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, quotedomain.ErrNotFound)

	quotes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}
