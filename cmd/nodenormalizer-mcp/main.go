// nodenormalizer-mcp is an MCP stdio server exposing the Translator SRI
// Node Normalization service as a tool. The base URL is overridable via
// NODE_NORMALIZER_URL; logs go to stderr as JSON (stdout is the MCP
// transport).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translator-sri/bioentity-mcp/internal/config"
	"github.com/translator-sri/bioentity-mcp/internal/logging"
	"github.com/translator-sri/bioentity-mcp/internal/nodenorm"
	"github.com/translator-sri/bioentity-mcp/internal/server"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.NewStderr(cfg.LogLevel)

	normalizer := nodenorm.NewClient(
		nodenorm.WithBaseURL(cfg.NodeNormalizerURL),
		nodenorm.WithLogger(logger),
	)

	srv := server.NewNodeNormalizer(normalizer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("nodenormalizer-mcp ready",
		"version", server.Version,
		"node_normalizer_url", cfg.NodeNormalizerURL,
	)
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
