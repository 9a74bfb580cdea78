package server

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translator-sri/bioentity-mcp/internal/mcptool"
	"github.com/translator-sri/bioentity-mcp/internal/nodenorm"
)

// NodeNormalizer is the backend of the nodenormalizer server.
// *nodenorm.Client satisfies it.
type NodeNormalizer interface {
	GetNormalizedNodes(ctx context.Context, curies []string, opts nodenorm.Options) (map[string]*nodenorm.NormalizedNode, error)
}

type normalizeInput struct {
	Curies               []string `json:"curies"`
	Conflate             bool     `json:"conflate,omitempty"`
	DrugChemicalConflate bool     `json:"drug_chemical_conflate,omitempty"`
	Description          bool     `json:"description,omitempty"`
	IndividualTypes      bool     `json:"individual_types,omitempty"`
}

// NewNodeNormalizer builds the nodenormalizer server.
func NewNodeNormalizer(normalizer NodeNormalizer, logger *slog.Logger) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "nodenormalizer",
		Version: Version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_normalized_nodes",
		Description: "Normalize biological entity CURIEs, optionally applying gene/protein and drug/chemical conflation.",
		InputSchema: mcptool.Object(map[string]*jsonschema.Schema{
			"curies":                 mcptool.StringArray(`CURIEs to normalize, e.g. ["MESH:D014867", "NCIT:C34373"].`),
			"conflate":               mcptool.Boolean("Apply gene/protein conflation.", false),
			"drug_chemical_conflate": mcptool.Boolean("Apply drug/chemical conflation.", false),
			"description":            mcptool.Boolean("Return CURIE descriptions when possible.", false),
			"individual_types":       mcptool.Boolean("Return individual types for equivalent identifiers.", false),
		}, "curies"),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, mcptool.Logged(logger, "get_normalized_nodes",
		func(ctx context.Context, req *mcp.CallToolRequest, in normalizeInput) (*mcp.CallToolResult, any, error) {
			opts := nodenorm.Options{
				Conflate:             in.Conflate,
				DrugChemicalConflate: in.DrugChemicalConflate,
				Description:          in.Description,
				IndividualTypes:      in.IndividualTypes,
			}
			nodes, err := normalizer.GetNormalizedNodes(ctx, in.Curies, opts)
			if err != nil {
				return nil, nil, err
			}

			return mcptool.TextResult(formatNormalizationReport(in.Curies, opts, nodes)), nil, nil
		}))

	return s
}

// formatNormalizationReport renders a batch result as the markdown-ish
// report the tool returns.
func formatNormalizationReport(curies []string, opts nodenorm.Options, nodes map[string]*nodenorm.NormalizedNode) string {
	var settings []string
	if opts.Conflate {
		settings = append(settings, "gene/protein conflation: ON")
	}
	if opts.DrugChemicalConflate {
		settings = append(settings, "drug/chemical conflation: ON")
	}
	if opts.Description {
		settings = append(settings, "descriptions: ON")
	}
	if opts.IndividualTypes {
		settings = append(settings, "individual types: ON")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Normalized %d CURIE(s)", len(curies))
	if len(settings) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(settings, "; "))
	}
	b.WriteString(":\n\n")

	for _, curie := range curies {
		node, present := nodes[curie]
		if !present {
			fmt.Fprintf(&b, "**%s:** Not found in response\n\n", curie)
			continue
		}
		if node == nil {
			fmt.Fprintf(&b, "**%s:** Not found\n\n", curie)
			continue
		}

		fmt.Fprintf(&b, "**%s** → **%s**", curie, node.ID.Identifier)
		if node.ID.Label != "" {
			fmt.Fprintf(&b, " (%s)", node.ID.Label)
		}
		b.WriteByte('\n')

		if opts.Description && node.ID.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", node.ID.Description)
		}

		if others := otherIdentifiers(node); len(others) > 0 {
			fmt.Fprintf(&b, "   Equivalent IDs: %s", strings.Join(others[:min(5, len(others))], ", "))
			if len(others) > 5 {
				fmt.Fprintf(&b, " (+%d more)", len(others)-5)
			}
			b.WriteByte('\n')
		}

		if opts.IndividualTypes {
			if types := individualTypes(node); len(types) > 0 {
				fmt.Fprintf(&b, "   Types: %s\n", strings.Join(types, ", "))
			}
		}

		b.WriteByte('\n')
	}

	return b.String()
}

// otherIdentifiers lists a node's equivalent identifiers excluding its
// canonical one.
func otherIdentifiers(node *nodenorm.NormalizedNode) []string {
	var others []string
	for _, eq := range node.EquivalentIdentifiers {
		if eq.Identifier != node.ID.Identifier {
			others = append(others, eq.Identifier)
		}
	}

	return others
}

// individualTypes unions the per-identifier type lists, sorted.
func individualTypes(node *nodenorm.NormalizedNode) []string {
	seen := make(map[string]bool)
	var types []string
	for _, eq := range node.EquivalentIdentifiers {
		for _, t := range eq.Types {
			if seen[t] {
				continue
			}
			seen[t] = true
			types = append(types, t)
		}
	}
	slices.Sort(types)

	return types
}
