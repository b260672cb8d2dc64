package catalog

import (
	"github.com/hillcosite/priceguide/internal/catalog/repository"
	"github.com/hillcosite/priceguide/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
