// Package config loads process settings and the source catalog.
//
// Settings come from flags and VERSIONWATCH_* environment variables through
// viper and are read once, when the root command starts. The catalog lists
// the upstream sources checked by "versionwatch latest"; a default catalog
// is embedded in the binary.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	errs "github.com/podiumd/versionwatch/pkg/errors"
	"github.com/podiumd/versionwatch/pkg/httputil"
	"github.com/podiumd/versionwatch/pkg/publiccode"
)

// EnvPrefix namespaces environment variables, e.g. VERSIONWATCH_CACHE.
const EnvPrefix = "VERSIONWATCH"

// Setting keys. Dots and dashes map to underscores in the environment.
const (
	KeyVerbose           = "verbose"
	KeyCatalog           = "config"
	KeyCache             = "cache"
	KeyCacheTTL          = "cache-ttl"
	KeyRedisURL          = "redis-url"
	KeyRetries           = "retries"
	KeyTimeout           = "timeout"
	KeyChartURL          = "chart-url"
	KeyAddr              = "addr"
	KeyPubliccodeFile    = "publiccode.file"
	KeyPubliccodeVersion = "publiccode.version"
	KeyPubliccodeForce   = "publiccode.force"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Defaults.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = time.Hour
	DefaultAddr     = ":8080"
	DefaultRedisURL = "redis://localhost:6379/0"
)

// Settings is the process configuration.
type Settings struct {
	Verbose    bool
	Catalog    string // Source catalog path; empty uses the embedded default
	Cache      string // none, file or redis
	CacheTTL   time.Duration
	RedisURL   string
	Retries    int // Attempts per request; 1 means no retry
	Timeout    time.Duration
	ChartURL   string // Chart repository raw-file root; empty uses the builder default
	Addr       string
	Publiccode publiccode.Config
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyCache, CacheNone)
	v.SetDefault(KeyCacheTTL, DefaultCacheTTL)
	v.SetDefault(KeyRedisURL, DefaultRedisURL)
	v.SetDefault(KeyRetries, httputil.DefaultAttempts)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyPubliccodeFile, publiccode.DefaultFile)
	return v
}

// Load reads Settings from v and validates them.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Verbose:  v.GetBool(KeyVerbose),
		Catalog:  v.GetString(KeyCatalog),
		Cache:    strings.ToLower(strings.TrimSpace(v.GetString(KeyCache))),
		CacheTTL: v.GetDuration(KeyCacheTTL),
		RedisURL: v.GetString(KeyRedisURL),
		Retries:  v.GetInt(KeyRetries),
		Timeout:  v.GetDuration(KeyTimeout),
		ChartURL: v.GetString(KeyChartURL),
		Addr:     v.GetString(KeyAddr),
		Publiccode: publiccode.Config{
			File:    v.GetString(KeyPubliccodeFile),
			Version: v.GetString(KeyPubliccodeVersion),
			Force:   v.GetBool(KeyPubliccodeForce),
		},
	}
	return s, s.Validate()
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	switch s.Cache {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unknown cache backend %q (want none, file or redis)", s.Cache)
	}
	if s.Retries < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "retries must be at least 1, got %d", s.Retries)
	}
	if s.Timeout <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "timeout must be positive, got %s", s.Timeout)
	}
	if s.CacheTTL < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cache-ttl cannot be negative")
	}
	if s.Cache == CacheRedis && s.RedisURL == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "redis cache requires --redis-url")
	}
	if s.ChartURL != "" {
		if err := errs.ValidateURL(s.ChartURL); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "chart-url")
		}
	}
	return nil
}
