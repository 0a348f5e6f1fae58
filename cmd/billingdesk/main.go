package main

import (
	"log"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/burnproductions/billingdesk/internal/clock"
	"github.com/burnproductions/billingdesk/internal/config"
	"github.com/burnproductions/billingdesk/internal/observability"
	"github.com/burnproductions/billingdesk/internal/server"
	"github.com/burnproductions/billingdesk/internal/storage"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		storage.Module,
		clock.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("snowflake init: %v", err)
	}
	return node
}
