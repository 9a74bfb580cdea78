// Package mcptool carries the shared plumbing for registering tools on
// an MCP server: result constructors, JSON Schema builders for tool
// inputs, and a logging wrapper that tags every invocation with a ULID
// so the log lines of a chained workflow correlate.
package mcptool
