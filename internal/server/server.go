// Package server exposes the billing services over HTTP for the
// operator UI.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	appconfig "github.com/burnproductions/billingdesk/internal/config"
	"github.com/burnproductions/billingdesk/internal/expense"
	expensedomain "github.com/burnproductions/billingdesk/internal/expense/domain"
	"github.com/burnproductions/billingdesk/internal/invoice"
	invoicedomain "github.com/burnproductions/billingdesk/internal/invoice/domain"
	obsmiddleware "github.com/burnproductions/billingdesk/internal/observability/logger"
	"github.com/burnproductions/billingdesk/internal/providers/pdf"
	"github.com/burnproductions/billingdesk/internal/quote"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
	"github.com/burnproductions/billingdesk/internal/summary"
	summarydomain "github.com/burnproductions/billingdesk/internal/summary/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	quote.Module,
	invoice.Module,
	expense.Module,
	summary.Module,
	pdf.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func registerGin(log *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	return NewEngine(log, registry)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg appconfig.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        appconfig.Config
	profile    *appconfig.ProfileHolder
	quoteSvc   quotedomain.Service
	invoiceSvc invoicedomain.Service
	expenseSvc expensedomain.Service
	summarySvc summarydomain.Service
	pdfSvc     pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        appconfig.Config
	Profile    *appconfig.ProfileHolder
	QuoteSvc   quotedomain.Service
	InvoiceSvc invoicedomain.Service
	ExpenseSvc expensedomain.Service
	SummarySvc summarydomain.Service
	PdfSvc     pdf.Provider
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		profile:    p.Profile,
		quoteSvc:   p.QuoteSvc,
		invoiceSvc: p.InvoiceSvc,
		expenseSvc: p.ExpenseSvc,
		summarySvc: p.SummarySvc,
		pdfSvc:     p.PdfSvc,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/v1")

	quotes := v1.Group("/quotes")
	quotes.GET("", s.ListQuotes)
	quotes.POST("", s.CreateQuote)
	quotes.GET("/:id", s.GetQuoteByID)
	quotes.PATCH("/:id/status", s.SetQuoteStatus)
	quotes.DELETE("/:id", s.DeleteQuote)
	quotes.POST("/:id/convert", s.ConvertQuote)
	quotes.GET("/:id/pdf", s.QuotePDF)

	invoices := v1.Group("/invoices")
	invoices.GET("", s.ListInvoices)
	invoices.POST("", s.CreateInvoice)
	invoices.GET("/:id", s.GetInvoiceByID)
	invoices.PATCH("/:id/status", s.SetInvoiceStatus)
	invoices.DELETE("/:id", s.DeleteInvoice)
	invoices.GET("/:id/pdf", s.InvoicePDF)

	expenses := v1.Group("/expenses")
	expenses.GET("", s.ListExpenses)
	expenses.POST("", s.CreateExpense)
	expenses.GET("/:id", s.GetExpenseByID)
	expenses.PATCH("/:id/status", s.SetExpenseStatus)
	expenses.POST("/:id/pay", s.MarkExpensePaid)
	expenses.DELETE("/:id", s.DeleteExpense)

	v1.GET("/summary/dashboard", s.DashboardSummary)
	v1.GET("/summary/cash", s.CashPosition)
	v1.GET("/summary/expenses", s.ExpenseSummary)
	v1.GET("/transactions", s.TransactionFeed)
	v1.GET("/documents", s.ListDocuments)
	v1.GET("/reports/transactions/pdf", s.TransactionsReportPDF)
	v1.GET("/profile", s.GetProfile)
}
