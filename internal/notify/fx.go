package notify

import (
	"strings"

	"github.com/hillcosite/priceguide/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.notify",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg *config.PipelineConfigHolder) Provider {
	url := strings.TrimSpace(cfg.Get().WebhookURL)
	if url == "" {
		return &NoOpProvider{}
	}
	return NewWebhook(url)
}
