package storage

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/burnproductions/billingdesk/internal/config"
)

var Module = fx.Module("storage",
	fx.Provide(provideBackend),
)

func provideBackend(cfg config.Config, log *zap.Logger) (Backend, error) {
	return OpenSQLite(cfg.DatabasePath, log)
}
