package pagedescription

import (
	"github.com/granitmemory/catalog/internal/pagedescription/repository"
	"github.com/granitmemory/catalog/internal/pagedescription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pagedescription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
