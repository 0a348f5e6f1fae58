package expense

import (
	"go.uber.org/fx"

	"github.com/burnproductions/billingdesk/internal/expense/service"
)

var Module = fx.Module("expense.service",
	fx.Provide(service.NewService),
)
