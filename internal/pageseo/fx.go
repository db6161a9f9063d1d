package pageseo

import (
	"github.com/granitmemory/catalog/internal/pageseo/repository"
	"github.com/granitmemory/catalog/internal/pageseo/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pageseo.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
