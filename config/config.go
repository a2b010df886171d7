// Package config provides the service configuration, parsed from the
// environment.
package config

import (
	"github.com/apex/log"
	"github.com/caarlos0/env/v6"
)

// Config for the whole service.
type Config struct {
	Listen            string `env:"LISTEN" envDefault:"127.0.0.1:3000"`
	GitHubURL         string `env:"GITHUB_URL" envDefault:"https://github.com"`
	CacheEnabled      bool   `env:"CACHE_ENABLED" envDefault:"false"`
	CacheType         string `env:"CACHE_TYPE" envDefault:"memory"`
	CacheDurationSecs int    `env:"CACHE_DURATION_SECS" envDefault:"3600"`
	CacheFilePath     string `env:"CACHE_FILE_PATH" envDefault:"cache.json"`
	RedisURL          string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
}

// Get the current Config.
func Get() (cfg Config) {
	if err := env.Parse(&cfg); err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	return
}
