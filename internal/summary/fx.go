package summary

import (
	"go.uber.org/fx"

	"github.com/burnproductions/billingdesk/internal/summary/service"
)

var Module = fx.Module("summary.service",
	fx.Provide(service.NewService),
)
