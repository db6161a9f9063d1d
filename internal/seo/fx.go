package seo

import (
	"github.com/granitmemory/catalog/internal/seo/service"
	"go.uber.org/fx"
)

var Module = fx.Module("seo.resolver",
	fx.Provide(service.New),
	fx.Provide(service.NewFields),
)
