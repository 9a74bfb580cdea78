// biolink-mcp is an MCP stdio server answering Biolink Model hierarchy
// queries from the bundled model, with no network access. Logs go to
// stderr as JSON (stdout is the MCP transport).
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

	srv := server.NewBiolink(toolkit, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("biolink-mcp ready",
		"version", server.Version,
		"model_version", toolkit.Version(),
	)
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
