package work

import (
	"github.com/granitmemory/catalog/internal/work/repository"
	"github.com/granitmemory/catalog/internal/work/service"
	"go.uber.org/fx"
)

var Module = fx.Module("work.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
