// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer optional file and environment on top via Load.
// - Validate with ozzo rules before use.
package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Cache backend names accepted by the service.
const (
	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RequestTimeoutMS bounds each HTTP request end to end.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// CacheBackend selects the snapshot cache: none, memory or redis.
	CacheBackend string `koanf:"cache_backend"`

	// RedisAddr is the Redis address when CacheBackend is redis.
	RedisAddr string `koanf:"redis_addr"`

	// CacheTTLSeconds bounds how long cached snapshots stay valid.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// DashaHorizonYears bounds the generated Vimshottari timeline.
	DashaHorizonYears float64 `koanf:"dasha_horizon_years"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		RequestTimeoutMS:  5000,
		CacheBackend:      CacheBackendMemory,
		RedisAddr:         "localhost:6379",
		CacheTTLSeconds:   86400,
		DashaHorizonYears: 120,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.RequestTimeoutMS, validation.Min(1)),
		validation.Field(&c.CacheBackend, validation.In(CacheBackendNone, CacheBackendMemory, CacheBackendRedis)),
		validation.Field(&c.RedisAddr, validation.Required.When(c.CacheBackend == CacheBackendRedis)),
		validation.Field(&c.CacheTTLSeconds, validation.Min(1)),
		validation.Field(&c.DashaHorizonYears, validation.Min(1.0)),
	)
}
