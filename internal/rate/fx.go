package rate

import (
	"github.com/hillcosite/priceguide/internal/config"
	"github.com/hillcosite/priceguide/internal/rate/fetch"
	"github.com/hillcosite/priceguide/internal/rate/repository"
	"github.com/hillcosite/priceguide/internal/rate/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("rate.service",
	fx.Provide(repository.Provide),
	fx.Provide(provideFetcher),
	fx.Provide(service.New),
)

func provideFetcher(cfg *config.PipelineConfigHolder, log *zap.Logger) fetch.Fetcher {
	return fetch.New(cfg, log)
}
