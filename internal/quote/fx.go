package quote

import (
	"go.uber.org/fx"

	"github.com/burnproductions/billingdesk/internal/quote/service"
)

var Module = fx.Module("quote.service",
	fx.Provide(service.NewService),
)
