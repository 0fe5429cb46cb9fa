package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"resourcemetrics/internal/enablement"
	"resourcemetrics/internal/naming"
)

type Config struct {
	Server     ServerConfig
	Metrics    MetricsConfig
	RateLimit  RateLimitConfig
	Cache      CacheConfig
	Store      StoreConfig
	Database   DatabaseConfig
	Validation ValidationConfig
	Pprof      PprofConfig
}

type ServerConfig struct {
	Host               string `env:"SERVER_HOST" envDefault:"localhost"`
	Port               int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections     int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	MaxRequestBodySize string `env:"SERVER_MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
}

type MetricsConfig struct {
	TimingEnabledByDefault            bool          `env:"METRICS_TIMING_ENABLED_BY_DEFAULT" envDefault:"true"`
	StatusCodeCounterEnabledByDefault bool          `env:"METRICS_STATUS_CODE_COUNTER_ENABLED_BY_DEFAULT" envDefault:"true"`
	Backend                           string        `env:"METRICS_BACKEND" envDefault:"memory"`
	TimerName                         string        `env:"METRICS_TIMER_NAME" envDefault:"http.server.requests"`
	TimerStatusTag                    bool          `env:"METRICS_TIMER_STATUS_TAG" envDefault:"true"`
	StatusPlacement                   string        `env:"METRICS_STATUS_PLACEMENT" envDefault:"name"`
	VerbPlacement                     string        `env:"METRICS_VERB_PLACEMENT" envDefault:"name"`
	ReportInterval                    time.Duration `env:"METRICS_REPORT_INTERVAL" envDefault:"1m"`
}

// Defaults is the global fallback consulted when neither the method nor its
// resource carries a metrics annotation.
func (m MetricsConfig) Defaults() enablement.Defaults {
	return enablement.Defaults{
		enablement.Timing:         m.TimingEnabledByDefault,
		enablement.StatusCounting: m.StatusCodeCounterEnabledByDefault,
	}
}

func (m MetricsConfig) Namer() (naming.Namer, error) {
	status, err := naming.ParsePlacement(m.StatusPlacement)
	if err != nil {
		return naming.Namer{}, fmt.Errorf("METRICS_STATUS_PLACEMENT: %w", err)
	}
	verb, err := naming.ParsePlacement(m.VerbPlacement)
	if err != nil {
		return naming.Namer{}, fmt.Errorf("METRICS_VERB_PLACEMENT: %w", err)
	}
	return naming.Namer{
		TimerName:       m.TimerName,
		TimerStatusTag:  m.TimerStatusTag,
		StatusPlacement: status,
		VerbPlacement:   verb,
	}, nil
}

type RateLimitConfig struct {
	Enabled       bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"memory"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"widgets"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"16"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode, d.MaxConns,
	)
}

type ValidationConfig struct {
	MaxNameLength int `env:"VALIDATION_MAX_NAME_LENGTH" envDefault:"128"`
	MaxBatchSize  int `env:"VALIDATION_MAX_BATCH_SIZE" envDefault:"1000"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
