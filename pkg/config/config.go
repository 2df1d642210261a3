package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App   AppConfig
	Promo PromoConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Promo.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPCORE_APP_ENV" default:"dev"`
	Port         string `envconfig:"SHOPCORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPCORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPCORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// PromoConfig sets the cadence of the two recurring promotion processes.
// Defaults match production behavior; tests compress them.
type PromoConfig struct {
	LightningStartDelayMax time.Duration `envconfig:"SHOPCORE_PROMO_LIGHTNING_START_DELAY_MAX" default:"10s"`
	LightningInterval      time.Duration `envconfig:"SHOPCORE_PROMO_LIGHTNING_INTERVAL" default:"30s"`
	SuggestedStartDelayMax time.Duration `envconfig:"SHOPCORE_PROMO_SUGGESTED_START_DELAY_MAX" default:"20s"`
	SuggestedInterval      time.Duration `envconfig:"SHOPCORE_PROMO_SUGGESTED_INTERVAL" default:"60s"`
	EventBuffer            int           `envconfig:"SHOPCORE_PROMO_EVENT_BUFFER" default:"16"`
}

func (p PromoConfig) validate() error {
	if p.LightningInterval <= 0 {
		return fmt.Errorf("lightning interval must be positive")
	}
	if p.SuggestedInterval <= 0 {
		return fmt.Errorf("suggested interval must be positive")
	}
	if p.LightningStartDelayMax < 0 || p.SuggestedStartDelayMax < 0 {
		return fmt.Errorf("start delays cannot be negative")
	}
	if p.EventBuffer <= 0 {
		return fmt.Errorf("event buffer must be positive")
	}
	return nil
}
