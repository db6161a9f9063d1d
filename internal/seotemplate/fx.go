package seotemplate

import (
	"github.com/granitmemory/catalog/internal/seotemplate/repository"
	"github.com/granitmemory/catalog/internal/seotemplate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("seotemplate.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
