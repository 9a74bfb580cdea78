package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvNameResolverURL, "")
	t.Setenv(EnvNodeNormalizerURL, "")
	t.Setenv(EnvLogLevel, "")

	cfg := FromEnv()

	require.Equal(t, "https://name-resolution-sri.renci.org", cfg.NameResolverURL)
	require.Equal(t, "https://nodenormalization-sri.renci.org", cfg.NodeNormalizerURL)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvNameResolverURL, "http://localhost:8080")
	t.Setenv(EnvNodeNormalizerURL, "http://localhost:8081")
	t.Setenv(EnvLogLevel, "debug")

	cfg := FromEnv()

	require.Equal(t, "http://localhost:8080", cfg.NameResolverURL)
	require.Equal(t, "http://localhost:8081", cfg.NodeNormalizerURL)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}
