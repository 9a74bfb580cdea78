package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translator-sri/bioentity-mcp/internal/biolink"
	"github.com/translator-sri/bioentity-mcp/internal/mcptool"
)

type elementInput struct {
	Name string `json:"name"`
}

type traverseInput struct {
	Name      string `json:"name"`
	Formatted bool   `json:"formatted,omitempty"`
	Mixin     *bool  `json:"mixin,omitempty"`
}

type formattedInput struct {
	Formatted bool `json:"formatted,omitempty"`
}

// NewBiolink builds the biolink server: purely local queries against the
// bundled Biolink Model hierarchy.
func NewBiolink(toolkit *biolink.Toolkit, logger *slog.Logger) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "biolink",
		Version: Version,
	}, nil)

	nameSchema := func(desc string) *jsonschema.Schema {
		return mcptool.Object(map[string]*jsonschema.Schema{
			"name":      mcptool.String(desc),
			"formatted": mcptool.Boolean("Return formatted biolink: CURIEs.", false),
			"mixin":     mcptool.Boolean("Follow mixin edges in addition to is_a edges.", true),
		}, "name")
	}

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_element",
		Description: "Get a Biolink Model element (class or predicate) by name.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"name": mcptool.String(`Element name, e.g. "disease" or "biolink:Disease".`),
		}, "name"),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "get_element",
		func(ctx context.Context, req *mcp.CallToolRequest, in elementInput) (*mcp.CallToolResult, any, error) {
			element, err := toolkit.Element(in.Name)
			if errors.Is(err, biolink.ErrUnknownElement) {
				// unknown element is an empty record, not a failure
				return mcptool.TextResult("{}"), nil, nil
			}
			if err != nil {
				return nil, nil, err
			}
			result, err := mcptool.JSONResult(element)

			return result, nil, err
		}))

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_ancestors",
		Description: "Get ancestors of a Biolink Model element.",
		InputSchema: nameSchema("Name of the Biolink element."),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "get_ancestors",
		func(ctx context.Context, req *mcp.CallToolRequest, in traverseInput) (*mcp.CallToolResult, any, error) {
			names, err := toolkit.Ancestors(in.Name, traversalOptions(in))
			if err != nil {
				return nil, nil, err
			}
			result, err := mcptool.ListResult(names)

			return result, nil, err
		}))

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_descendants",
		Description: "Get descendants of a Biolink Model element.",
		InputSchema: nameSchema("Name of the Biolink element."),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "get_descendants",
		func(ctx context.Context, req *mcp.CallToolRequest, in traverseInput) (*mcp.CallToolResult, any, error) {
			names, err := toolkit.Descendants(in.Name, traversalOptions(in))
			if err != nil {
				return nil, nil, err
			}
			result, err := mcptool.ListResult(names)

			return result, nil, err
		}))

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_all_classes",
		Description: "Get all Biolink Model classes.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"formatted": mcptool.Boolean("Return formatted biolink: CURIEs.", false),
		}),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "get_all_classes",
		func(ctx context.Context, req *mcp.CallToolRequest, in formattedInput) (*mcp.CallToolResult, any, error) {
			result, err := mcptool.ListResult(toolkit.AllClasses(in.Formatted))

			return result, nil, err
		}))

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_all_entities",
		Description: "Get all Biolink Model entity classes: named thing and its descendants.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"formatted": mcptool.Boolean("Return formatted biolink: CURIEs.", false),
		}),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "get_all_entities",
		func(ctx context.Context, req *mcp.CallToolRequest, in formattedInput) (*mcp.CallToolResult, any, error) {
			result, err := mcptool.ListResult(toolkit.AllEntities(in.Formatted))

			return result, nil, err
		}))

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_all_slots",
		Description: "Get all Biolink Model predicate slots.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"formatted": mcptool.Boolean("Return formatted biolink: CURIEs.", false),
		}),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "get_all_slots",
		func(ctx context.Context, req *mcp.CallToolRequest, in formattedInput) (*mcp.CallToolResult, any, error) {
			result, err := mcptool.ListResult(toolkit.AllSlots(in.Formatted))

			return result, nil, err
		}))

	mcp.AddTool(s, &mcp.Tool{
		Name:        "is_predicate",
		Description: "Check whether a name is a Biolink predicate.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"name": mcptool.String("Name to check."),
		}, "name"),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "is_predicate",
		func(ctx context.Context, req *mcp.CallToolRequest, in elementInput) (*mcp.CallToolResult, any, error) {
			if toolkit.IsPredicate(in.Name) {
				return mcptool.TextResult("true"), nil, nil
			}

			return mcptool.TextResult("false"), nil, nil
		}))

	mcp.AddTool(s, &mcp.Tool{
		Name:        "find_most_specific_types",
		Description: "Filter a list of Biolink types down to the most specific ones: any type that is an ancestor of another type in the list is dropped.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"types": mcptool.StringArray(`Biolink types, e.g. ["biolink:Disease", "biolink:NamedThing"].`),
		}, "types"),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "find_most_specific_types",
		func(ctx context.Context, req *mcp.CallToolRequest, in typeListInput) (*mcp.CallToolResult, any, error) {
			result, err := mcptool.ListResult(biolink.MostSpecific(toolkit, in.Types))

			return result, nil, err
		}))

	return s
}

// traversalOptions maps tool input to toolkit options. Mixin traversal
// defaults on, matching the upstream model toolkit.
func traversalOptions(in traverseInput) biolink.TraversalOptions {
	mixin := true
	if in.Mixin != nil {
		mixin = *in.Mixin
	}

	return biolink.TraversalOptions{
		Formatted: in.Formatted,
		Mixin:     mixin,
	}
}
