// nameresolver-mcp is an MCP stdio server exposing the Translator SRI
// Name Resolution and Node Normalization services as tools, together
// with the chained find_most_specific_type_for_entity workflow.
//
// Base URLs are overridable via NAME_RESOLVER_URL and
// NODE_NORMALIZER_URL; logs go to stderr as JSON (stdout is the MCP
// transport).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translator-sri/bioentity-mcp/internal/biolink"
	"github.com/translator-sri/bioentity-mcp/internal/config"
	"github.com/translator-sri/bioentity-mcp/internal/logging"
	"github.com/translator-sri/bioentity-mcp/internal/nameres"
	"github.com/translator-sri/bioentity-mcp/internal/nodenorm"
	"github.com/translator-sri/bioentity-mcp/internal/server"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.NewStderr(cfg.LogLevel)

	toolkit, err := biolink.New()
	if err != nil {
		logger.Error("load biolink model", "error", err)
		os.Exit(1)
	}

	resolver := nameres.NewClient(
		nameres.WithBaseURL(cfg.NameResolverURL),
		nameres.WithLogger(logger),
	)
	normalizer := nodenorm.NewClient(
		nodenorm.WithBaseURL(cfg.NodeNormalizerURL),
		nodenorm.WithLogger(logger),
	)

	srv := server.NewNameResolver(resolver, normalizer, toolkit, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("nameresolver-mcp ready",
		"version", server.Version,
		"name_resolver_url", cfg.NameResolverURL,
		"node_normalizer_url", cfg.NodeNormalizerURL,
	)
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
