// Package config reads server configuration from the environment, the
// way MCP hosts pass settings to stdio servers.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvNameResolverURL   = "NAME_RESOLVER_URL"
	EnvNodeNormalizerURL = "NODE_NORMALIZER_URL"
	EnvLogLevel          = "MCP_LOG_LEVEL"
)

// Config carries the overridable settings shared by the servers. Base
// URLs default to the public RENCI deployments.
type Config struct {
	NameResolverURL   string
	NodeNormalizerURL string
	LogLevel          slog.Level
}

// FromEnv loads configuration, falling back to defaults for anything
// unset.
func FromEnv() Config {
	return Config{
		NameResolverURL:   getenv(EnvNameResolverURL, "https://name-resolution-sri.renci.org"),
		NodeNormalizerURL: getenv(EnvNodeNormalizerURL, "https://nodenormalization-sri.renci.org"),
		LogLevel:          parseLevel(os.Getenv(EnvLogLevel)),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
