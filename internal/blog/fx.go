package blog

import (
	"github.com/granitmemory/catalog/internal/blog/repository"
	"github.com/granitmemory/catalog/internal/blog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("blog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
