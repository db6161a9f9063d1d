package campaign

import (
	"github.com/granitmemory/catalog/internal/campaign/repository"
	"github.com/granitmemory/catalog/internal/campaign/service"
	"go.uber.org/fx"
)

var Module = fx.Module("campaign.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
