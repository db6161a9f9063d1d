package catalog

import (
	"github.com/granitmemory/catalog/internal/catalog/repository"
	"github.com/granitmemory/catalog/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
