package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	expensedomain "github.com/burnproductions/billingdesk/internal/expense/domain"
)

func (s *Server) ListExpenses(c *gin.Context) {
	expenses, err := s.expenseSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

func (s *Server) GetExpenseByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	exp, err := s.expenseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": exp})
}

func (s *Server) CreateExpense(c *gin.Context) {
	var req expensedomain.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	exp, err := s.expenseSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": exp})
}

func (s *Server) SetExpenseStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	exp, err := s.expenseSvc.SetStatus(c.Request.Context(), id, expensedomain.Status(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": exp})
}

func (s *Server) MarkExpensePaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	exp, err := s.expenseSvc.MarkPaid(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": exp})
}

func (s *Server) DeleteExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.expenseSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) ExpenseSummary(c *gin.Context) {
	sum, err := s.expenseSvc.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sum})
}
