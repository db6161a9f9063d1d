package epitaph

import (
	"github.com/granitmemory/catalog/internal/epitaph/repository"
	"github.com/granitmemory/catalog/internal/epitaph/service"
	"go.uber.org/fx"
)

var Module = fx.Module("epitaph.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
