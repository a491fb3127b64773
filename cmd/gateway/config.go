package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	quotaLifetime    = "lifetime"
	quotaTokenBucket = "token-bucket"
	quotaOff         = "off"
)

type config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	UpstreamURL string `env:"UPSTREAM_URL,required"`

	ForbiddenPrefixes []string `env:"FORBIDDEN_PREFIXES" envDefault:"/admin/" envSeparator:","`

	// QuotaMode: "lifetime" (contador que nunca zera), "token-bucket" (reposição
	// no tempo) ou "off".
	QuotaMode  string        `env:"QUOTA_MODE" envDefault:"lifetime"`
	QuotaLimit int           `env:"QUOTA_LIMIT" envDefault:"100"`
	QuotaRedis bool          `env:"QUOTA_REDIS" envDefault:"false"`
	RateRPS    float64       `env:"RATE_RPS" envDefault:"10"`
	RateBurst  int           `env:"RATE_BURST" envDefault:"20"`
	KeyHeader  string        `env:"RATE_KEY_HEADER"`
	TrustXFF   bool          `env:"TRUST_XFF" envDefault:"false"`
	RetryAfter time.Duration `env:"RETRY_AFTER" envDefault:"1s"`
	AddHeaders bool          `env:"ADD_RATELIMIT_HEADERS" envDefault:"false"`

	ConcurrencyMax     int           `env:"CONCURRENCY_MAX" envDefault:"100"`
	ConcurrencyTimeout time.Duration `env:"CONCURRENCY_TIMEOUT" envDefault:"0s"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	StatsEnabled   bool          `env:"STATS_ENABLED" envDefault:"false"`
	StatsPrefix    string        `env:"STATS_PREFIX" envDefault:"gateway:stats"`
	StatsTTL       time.Duration `env:"STATS_TTL" envDefault:"24h"`
	StatsBucket    string        `env:"STATS_BUCKET" envDefault:"minute"`
	StatsTrackKeys bool          `env:"STATS_TRACK_KEYS" envDefault:"false"`

	LogDebug  bool   `env:"LOG_DEBUG" envDefault:"false"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

func (c config) needsRedis() bool {
	return c.StatsEnabled || (c.QuotaRedis && c.QuotaMode == quotaLifetime)
}

func readConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.QuotaMode = strings.ToLower(strings.TrimSpace(cfg.QuotaMode))
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if strings.TrimSpace(c.UpstreamURL) == "" {
		return errors.New("UPSTREAM_URL is required")
	}
	switch c.QuotaMode {
	case quotaLifetime:
		if c.QuotaLimit < 0 {
			return errors.New("QUOTA_LIMIT must be >= 0")
		}
	case quotaTokenBucket:
		if c.RateRPS <= 0 {
			return errors.New("RATE_RPS must be > 0")
		}
		if c.RateBurst <= 0 {
			return errors.New("RATE_BURST must be > 0")
		}
		if c.QuotaRedis {
			return errors.New("QUOTA_REDIS is only supported with QUOTA_MODE=lifetime")
		}
	case quotaOff:
	default:
		return fmt.Errorf("QUOTA_MODE must be one of %s, %s, %s", quotaLifetime, quotaTokenBucket, quotaOff)
	}
	if c.ConcurrencyMax < 0 {
		return errors.New("CONCURRENCY_MAX must be >= 0")
	}
	if c.needsRedis() && strings.TrimSpace(c.RedisAddr) == "" {
		return errors.New("REDIS_ADDR is required when STATS_ENABLED=true or QUOTA_REDIS=true")
	}
	return nil
}
