// internal/config/env.go
package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"gazette/internal/log"
)

// Environment keys recognized on top of site.yaml. They exist for the
// develop-vs-publish split: a deployment pipeline can point the build at the
// public URL and switch off relative links without editing the site file.
const (
	envSiteURL      = "GAZETTE_SITE_URL"
	envOutput       = "GAZETTE_OUTPUT"
	envTheme        = "GAZETTE_THEME"
	envTimezone     = "GAZETTE_TIMEZONE"
	envRelativeURLs = "GAZETTE_RELATIVE_URLS"
	envPagination   = "GAZETTE_PAGINATION"
)

func mergeEnv(cfg *Config) {
	lg := log.WithComponent("config")
	cfg.SiteURL = envString(lg, envSiteURL, cfg.SiteURL)
	cfg.OutputDir = envString(lg, envOutput, cfg.OutputDir)
	cfg.Theme = envString(lg, envTheme, cfg.Theme)
	cfg.Timezone = envString(lg, envTimezone, cfg.Timezone)
	cfg.RelativeURLs = envBool(lg, envRelativeURLs, cfg.RelativeURLs)
	cfg.Pagination = envInt(lg, envPagination, cfg.Pagination)
}

func envString(lg zerolog.Logger, key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		lg.Debug().Str("key", key).Str("value", v).Msg("environment override")
		return v
	}
	return fallback
}

func envBool(lg zerolog.Logger, key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		lg.Warn().Str("key", key).Str("value", v).
			Msg("invalid boolean in environment variable, keeping configured value")
		return fallback
	}
	lg.Debug().Str("key", key).Bool("value", b).Msg("environment override")
	return b
}

func envInt(lg zerolog.Logger, key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		lg.Warn().Str("key", key).Str("value", v).
			Msg("invalid integer in environment variable, keeping configured value")
		return fallback
	}
	lg.Debug().Str("key", key).Int("value", i).Msg("environment override")
	return i
}
