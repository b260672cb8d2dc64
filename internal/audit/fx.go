package audit

import (
	"github.com/hillcosite/priceguide/internal/audit/repository"
	"github.com/hillcosite/priceguide/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
