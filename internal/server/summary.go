package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	summarydomain "github.com/burnproductions/billingdesk/internal/summary/domain"
)

func (s *Server) DashboardSummary(c *gin.Context) {
	sum, err := s.summarySvc.Dashboard(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sum})
}

func (s *Server) CashPosition(c *gin.Context) {
	sum, err := s.summarySvc.CashPosition(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sum})
}

func (s *Server) TransactionFeed(c *gin.Context) {
	filter, ok := feedFilterFromQuery(c)
	if !ok {
		return
	}

	feed, err := s.summarySvc.Feed(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": feed})
}

func (s *Server) ListDocuments(c *gin.Context) {
	filter := summarydomain.DocumentFilter{
		Type:   documentdomain.RecordType(strings.TrimSpace(c.Query("type"))),
		Search: strings.TrimSpace(c.Query("search")),
	}

	docs, err := s.summarySvc.Documents(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": docs})
}

func (s *Server) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.profile.Get()})
}

func feedFilterFromQuery(c *gin.Context) (summarydomain.FeedFilter, bool) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return summarydomain.FeedFilter{}, false
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return summarydomain.FeedFilter{}, false
	}

	return summarydomain.FeedFilter{
		Type:   documentdomain.RecordType(strings.TrimSpace(c.Query("type"))),
		Status: strings.TrimSpace(c.Query("status")),
		From:   from,
		To:     to,
	}, true
}
