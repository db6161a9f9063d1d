package main

import (
	"github.com/granitmemory/catalog/internal/config"
	"github.com/granitmemory/catalog/internal/logger"
	"github.com/granitmemory/catalog/internal/migration"
	"github.com/granitmemory/catalog/internal/observability"
	"github.com/granitmemory/catalog/internal/server"
	"github.com/granitmemory/catalog/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		db.Module,
		migration.Module,
		observability.Module,
		server.Module,
	)

	app.Run()
}
