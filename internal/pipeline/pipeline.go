package pipeline

import (
	"context"
	"log/slog"

	"github.com/translator-sri/bioentity-mcp/internal/biolink"
	"github.com/translator-sri/bioentity-mcp/internal/logging"
	"github.com/translator-sri/bioentity-mcp/internal/nameres"
	"github.com/translator-sri/bioentity-mcp/internal/nodenorm"
)

// EntityResolver resolves a free-text entity name to ranked CURIEs.
// *nameres.Client satisfies it.
type EntityResolver interface {
	ResolveToCuries(ctx context.Context, req nameres.LookupRequest) ([]string, error)
}

// TypeFinder returns the deduplicated union of semantic types for a
// batch of CURIEs. *nodenorm.Client satisfies it.
type TypeFinder interface {
	TypesForCuries(ctx context.Context, curies []string, opts nodenorm.Options) ([]string, error)
}

// Pipeline wires the two remote stages and the local filter together.
// It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	resolver   EntityResolver
	normalizer TypeFinder
	hierarchy  biolink.AncestorSource
	conflation nodenorm.Options
	logger     *slog.Logger
}

// Option configures a Pipeline during construction.
type Option func(*Pipeline)

// WithConflation sets the normalization toggles used by the middle stage.
func WithConflation(opts nodenorm.Options) Option {
	return func(p *Pipeline) {
		p.conflation = opts
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New builds a Pipeline over the given stages. The hierarchy is injected
// rather than loaded here so tests can substitute a small fixed one.
func New(resolver EntityResolver, normalizer TypeFinder, hierarchy biolink.AncestorSource, opts ...Option) *Pipeline {
	p := &Pipeline{
		resolver:   resolver,
		normalizer: normalizer,
		hierarchy:  hierarchy,
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// MostSpecificTypeForEntity runs the full chain for one entity name.
//
// Stage 1 resolves the name to CURIEs; if none are found the pipeline
// returns an empty result without calling the normalizer. Stage 2 maps
// the CURIEs to their union of semantic types; if none are found the
// pipeline returns empty without filtering. Stage 3 keeps the most
// specific labels. Errors from either remote stage abort the pipeline
// and are returned as-is; there is no partial-result fallback.
func (p *Pipeline) MostSpecificTypeForEntity(ctx context.Context, req nameres.LookupRequest) ([]string, error) {
	curies, err := p.resolver.ResolveToCuries(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(curies) == 0 {
		p.logger.Debug("no CURIEs resolved", "entity", req.Entity)
		return []string{}, nil
	}

	types, err := p.normalizer.TypesForCuries(ctx, curies, p.conflation)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		p.logger.Debug("no types for resolved CURIEs", "entity", req.Entity, "curies", len(curies))
		return []string{}, nil
	}

	mostSpecific := biolink.MostSpecific(p.hierarchy, types)

	p.logger.Debug("pipeline complete",
		"entity", req.Entity,
		"curies", len(curies),
		"types", len(types),
		"most_specific", mostSpecific,
	)

	return mostSpecific, nil
}
