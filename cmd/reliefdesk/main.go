package main

import (
	"github.com/reliefdesk/reliefdesk/internal/clock"
	"github.com/reliefdesk/reliefdesk/internal/config"
	"github.com/reliefdesk/reliefdesk/internal/migration"
	"github.com/reliefdesk/reliefdesk/internal/observability"
	"github.com/reliefdesk/reliefdesk/internal/server"
	"github.com/reliefdesk/reliefdesk/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}
