package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) QuotePDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	q, err := s.quoteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	r, err := s.pdfSvc.RenderQuote(c.Request.Context(), q)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writePDF(c, q.Number, r)
}

func (s *Server) InvoicePDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inv, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	r, err := s.pdfSvc.RenderInvoice(c.Request.Context(), inv)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writePDF(c, inv.Number, r)
}

func (s *Server) TransactionsReportPDF(c *gin.Context) {
	filter, ok := feedFilterFromQuery(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sum, err := s.summarySvc.CashPosition(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	feed, err := s.summarySvc.Feed(ctx, filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	r, err := s.pdfSvc.RenderTransactionsReport(ctx, sum, feed)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writePDF(c, "transactions-report", r)
}

func writePDF(c *gin.Context, name string, r io.Reader) {
	doc, err := io.ReadAll(r)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	c.Data(http.StatusOK, "application/pdf", doc)
}
