package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PipelineConfig carries the operator-tunable knobs of the inflation pipeline.
type PipelineConfig struct {
	// NotificationSampleSize bounds how many before/after changes are included
	// in the notification summary.
	NotificationSampleSize int      `mapstructure:"notificationSampleSize"`
	CPIEndpoints           []string `mapstructure:"cpiEndpoints"`
	FetchTimeoutSeconds    int      `mapstructure:"fetchTimeoutSeconds"`
	WebhookURL             string   `mapstructure:"webhookUrl"`
	CommitConcurrency      int      `mapstructure:"commitConcurrency"`
}

func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		NotificationSampleSize: 5,
		CPIEndpoints: []string{
			"https://api.bls.gov/publicAPI/v2/timeseries/data/CUUR0000SA0",
		},
		FetchTimeoutSeconds: 15,
		CommitConcurrency:   8,
	}
}

// PipelineConfigHolder serves the current pipeline config and hot-reloads it
// when the backing file changes.
type PipelineConfigHolder struct {
	current atomic.Value // holds PipelineConfig
}

func NewPipelineConfigHolder() (*PipelineConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pipeline")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/priceguide/config")
	v.AddConfigPath("/etc/priceguide")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PRICEGUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPipelineConfig()
	v.SetDefault("pipeline.notificationSampleSize", defaults.NotificationSampleSize)
	v.SetDefault("pipeline.cpiEndpoints", defaults.CPIEndpoints)
	v.SetDefault("pipeline.fetchTimeoutSeconds", defaults.FetchTimeoutSeconds)
	v.SetDefault("pipeline.webhookUrl", defaults.WebhookURL)
	v.SetDefault("pipeline.commitConcurrency", defaults.CommitConcurrency)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg PipelineConfig
	if err := v.UnmarshalKey("pipeline", &cfg); err != nil {
		return nil, err
	}
	if err := validatePipelineConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PipelineConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PipelineConfig
		if err := v.UnmarshalKey("pipeline", &updated); err != nil {
			log.Printf("[pipeline-config] reload failed: %v", err)
			return
		}
		if err := validatePipelineConfig(updated); err != nil {
			log.Printf("[pipeline-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[pipeline-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticPipelineConfigHolder pins the holder to cfg without watching any
// config file. Used by tests and one-shot tooling.
func NewStaticPipelineConfigHolder(cfg PipelineConfig) *PipelineConfigHolder {
	holder := &PipelineConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *PipelineConfigHolder) Get() PipelineConfig {
	return h.current.Load().(PipelineConfig)
}

func validatePipelineConfig(cfg PipelineConfig) error {
	if cfg.NotificationSampleSize <= 0 {
		return errors.New("pipeline.notificationSampleSize must be positive")
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		return errors.New("pipeline.fetchTimeoutSeconds must be positive")
	}
	if cfg.CommitConcurrency <= 0 {
		return errors.New("pipeline.commitConcurrency must be positive")
	}
	return nil
}
