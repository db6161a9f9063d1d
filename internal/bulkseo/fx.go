package bulkseo

import (
	"github.com/granitmemory/catalog/internal/bulkseo/repository"
	"github.com/granitmemory/catalog/internal/bulkseo/service"
	"go.uber.org/fx"
)

var Module = fx.Module("bulkseo.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
