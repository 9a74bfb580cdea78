package server

import (
	"context"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translator-sri/bioentity-mcp/internal/biolink"
	"github.com/translator-sri/bioentity-mcp/internal/mcptool"
	"github.com/translator-sri/bioentity-mcp/internal/nameres"
	"github.com/translator-sri/bioentity-mcp/internal/nodenorm"
	"github.com/translator-sri/bioentity-mcp/internal/pipeline"
)

// Version is shared by all three servers.
const Version = "0.1.0"

type resolveEntityInput struct {
	Entity       string   `json:"entity"`
	Limit        int      `json:"limit,omitempty"`
	BiolinkType  string   `json:"biolink_type,omitempty"`
	OnlyPrefixes []string `json:"only_prefixes,omitempty"`
	OnlyTaxa     []string `json:"only_taxa,omitempty"`
}

type getTypesInput struct {
	Curies               []string `json:"curies"`
	Conflate             bool     `json:"conflate,omitempty"`
	DrugChemicalConflate bool     `json:"drug_chemical_conflate,omitempty"`
}

type typeListInput struct {
	Types []string `json:"types"`
}

// NewNameResolver builds the node-resolver server: per-stage tools plus
// the chained find_most_specific_type_for_entity workflow.
func NewNameResolver(
	resolver pipeline.EntityResolver,
	normalizer pipeline.TypeFinder,
	hierarchy biolink.AncestorSource,
	logger *slog.Logger,
) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "node-resolver",
		Version: Version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "resolve_entity_to_curies",
		Description: "Resolve a biological entity name to CURIEs using the Name Resolution Service.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"entity":        mcptool.String(`Biological entity name, e.g. "diabetes", "BRCA1", "aspirin".`),
			"limit":         mcptool.Integer("Number of results to return.", nameres.DefaultLimit),
			"biolink_type":  mcptool.String(`Filter by Biolink entity type, e.g. "Disease" or "Gene".`),
			"only_prefixes": mcptool.StringArray(`Only include results from these namespaces, e.g. ["MONDO", "HGNC"].`),
			"only_taxa":     mcptool.StringArray(`Only include results for these taxa, e.g. ["NCBITaxon:9606"].`),
		}, "entity"),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "resolve_entity_to_curies",
		func(ctx context.Context, req *mcp.CallToolRequest, in resolveEntityInput) (*mcp.CallToolResult, any, error) {
			curies, err := resolver.ResolveToCuries(ctx, lookupRequest(in))
			if err != nil {
				return nil, nil, err
			}
			result, err := mcptool.ListResult(curies)

			return result, nil, err
		}))

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_types_for_curies",
		Description: "Get Biolink types for a list of CURIEs using the Node Normalization Service.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"curies":                 mcptool.StringArray(`CURIEs to look up, e.g. ["MONDO:0005148", "HGNC:1100"].`),
			"conflate":               mcptool.Boolean("Apply gene/protein conflation.", false),
			"drug_chemical_conflate": mcptool.Boolean("Apply drug/chemical conflation.", false),
		}, "curies"),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "get_types_for_curies",
		func(ctx context.Context, req *mcp.CallToolRequest, in getTypesInput) (*mcp.CallToolResult, any, error) {
			types, err := normalizer.TypesForCuries(ctx, in.Curies, nodenorm.Options{
				Conflate:             in.Conflate,
				DrugChemicalConflate: in.DrugChemicalConflate,
			})
			if err != nil {
				return nil, nil, err
			}
			result, err := mcptool.ListResult(types)

			return result, nil, err
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
			result, err := mcptool.ListResult(biolink.MostSpecific(hierarchy, in.Types))

			return result, nil, err
		}))

	chain := pipeline.New(resolver, normalizer, hierarchy, pipeline.WithLogger(logger))

	mcp.AddTool(s, &mcp.Tool{
		Name: "find_most_specific_type_for_entity",
		Description: "Find the most specific Biolink type(s) for a biological entity. " +
			"Chains name resolution, node normalization, and type filtering.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"entity":        mcptool.String(`Biological entity name, e.g. "diabetes", "BRCA1", "aspirin".`),
			"limit":         mcptool.Integer("Number of name resolution results to consider.", nameres.DefaultLimit),
			"biolink_type":  mcptool.String("Filter by Biolink entity type during name resolution."),
			"only_prefixes": mcptool.StringArray(`Only include results from these namespaces, e.g. ["MONDO", "HGNC"].`),
			"only_taxa":     mcptool.StringArray(`Only include results for these taxa, e.g. ["NCBITaxon:9606"].`),
		}, "entity"),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "find_most_specific_type_for_entity",
		func(ctx context.Context, req *mcp.CallToolRequest, in resolveEntityInput) (*mcp.CallToolResult, any, error) {
			types, err := chain.MostSpecificTypeForEntity(ctx, lookupRequest(in))
			if err != nil {
				return nil, nil, err
			}
			result, err := mcptool.ListResult(types)

			return result, nil, err
		}))

	return s
}

func lookupRequest(in resolveEntityInput) nameres.LookupRequest {
	return nameres.LookupRequest{
		Entity:       in.Entity,
		Limit:        in.Limit,
		BiolinkType:  in.BiolinkType,
		OnlyPrefixes: in.OnlyPrefixes,
		OnlyTaxa:     in.OnlyTaxa,
	}
}
