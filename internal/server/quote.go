package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
)

// ListQuotes returns every quote, or only the convertible ones when the
// UI asks with ?status=approved.
func (s *Server) ListQuotes(c *gin.Context) {
	var (
		quotes []quotedomain.Quote
		err    error
	)
	if c.Query("status") == string(quotedomain.StatusApproved) {
		quotes, err = s.quoteSvc.ListApproved(c.Request.Context())
	} else {
		quotes, err = s.quoteSvc.List(c.Request.Context())
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": quotes})
}

func (s *Server) GetQuoteByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	q, err := s.quoteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": q})
}

func (s *Server) CreateQuote(c *gin.Context) {
	var req quotedomain.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if req.BusinessInfo.Name == "" {
		req.BusinessInfo = s.profile.Get().Business
	}

	q, err := s.quoteSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": q})
}

func (s *Server) SetQuoteStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	q, err := s.quoteSvc.SetStatus(c.Request.Context(), id, quotedomain.Status(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": q})
}

func (s *Server) DeleteQuote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.quoteSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ConvertQuote returns a prefilled invoice draft. Nothing is persisted
// until the draft comes back through CreateInvoice.
func (s *Server) ConvertQuote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	draft, err := s.invoiceSvc.ConvertQuote(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}
