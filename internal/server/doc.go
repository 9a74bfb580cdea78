// Package server assembles the MCP servers: one per upstream service
// plus the local Biolink toolkit server. Each constructor takes its
// backends as interfaces so tests can substitute doubles, registers the
// typed tools, and returns a ready-to-run *mcp.Server.
package server
