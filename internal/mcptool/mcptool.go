package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"
)

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// ListResult renders a list of strings as a JSON array text result.
func ListResult(items []string) (*mcp.CallToolResult, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal list result: %w", err)
	}

	return TextResult(string(data)), nil
}

// JSONResult renders any value as an indented JSON text result.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	return TextResult(string(data)), nil
}

// Logged wraps a typed tool handler so every invocation carries a ULID
// and logs its outcome and duration.
func Logged[In, Out any](logger *slog.Logger, tool string, h mcp.ToolHandlerFor[In, Out]) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error) {
		invocation := ulid.Make().String()
		start := time.Now()

		result, output, err := h(ctx, req, input)
		if err != nil {
			logger.Error("tool call failed",
				"tool", tool,
				"invocation", invocation,
				"duration", time.Since(start),
				"error", err,
			)
		} else {
			logger.Info("tool call",
				"tool", tool,
				"invocation", invocation,
				"duration", time.Since(start),
			)
		}

		return result, output, err
	}
}

// Schema builders for explicit tool input schemas. The SDK can derive
// schemas from struct tags, but explicit schemas carry the defaults and
// richer descriptions the hosted tools advertise.

// Object builds an object schema with the given properties. Names listed
// in required must be present in props.
func Object(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// String builds a string property schema.
func String(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

// Integer builds an integer property schema with a default.
func Integer(description string, def int) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Description: description,
		Default:     json.RawMessage(fmt.Sprintf("%d", def)),
	}
}

// Boolean builds a boolean property schema with a default.
func Boolean(description string, def bool) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "boolean",
		Description: description,
		Default:     json.RawMessage(fmt.Sprintf("%t", def)),
	}
}

// StringArray builds an array-of-strings property schema.
func StringArray(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: description,
		Items:       &jsonschema.Schema{Type: "string"},
	}
}
