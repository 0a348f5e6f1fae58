package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	expensedomain "github.com/burnproductions/billingdesk/internal/expense/domain"
	invoicedomain "github.com/burnproductions/billingdesk/internal/invoice/domain"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
	"github.com/burnproductions/billingdesk/internal/storage"
)

var ErrInvalidRequest = errors.New("invalid_request")

type errorPayload struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware converts errors recorded on the context into a
// JSON error body after the handler chain runs.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	if vErr := documentdomain.AsValidation(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: vErr.Error(),
			Fields:  vErr.Missing,
		}
	}

	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, quotedomain.ErrInvalidStatus),
		errors.Is(err, invoicedomain.ErrInvalidStatus),
		errors.Is(err, expensedomain.ErrInvalidStatus):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: err.Error(),
		}
	case errors.Is(err, quotedomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, expensedomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case errors.Is(err, invoicedomain.ErrQuoteAlreadyInvoiced):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case storage.IsPersistence(err):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "storage_unavailable",
			Message: "storage unavailable",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}
