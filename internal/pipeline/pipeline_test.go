package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/translator-sri/bioentity-mcp/internal/nameres"
	"github.com/translator-sri/bioentity-mcp/internal/nodenorm"
)

type stubResolver struct {
	calls  int
	curies []string
	err    error
}

func (s *stubResolver) ResolveToCuries(_ context.Context, _ nameres.LookupRequest) ([]string, error) {
	s.calls++
	return s.curies, s.err
}

type stubNormalizer struct {
	calls     int
	gotCuries []string
	gotOpts   nodenorm.Options
	types     []string
	err       error
}

func (s *stubNormalizer) TypesForCuries(_ context.Context, curies []string, opts nodenorm.Options) ([]string, error) {
	s.calls++
	s.gotCuries = curies
	s.gotOpts = opts
	return s.types, s.err
}

type countingHierarchy struct {
	calls     int
	ancestors map[string][]string
}

func (h *countingHierarchy) ReflexiveAncestors(label string) []string {
	h.calls++
	return h.ancestors[label]
}

func testHierarchy() *countingHierarchy {
	return &countingHierarchy{ancestors: map[string][]string{
		"biolink:NamedThing": {"biolink:NamedThing"},
		"biolink:Disease":    {"biolink:Disease", "biolink:NamedThing"},
		"biolink:Gene":       {"biolink:Gene", "biolink:NamedThing"},
	}}
}

func TestMostSpecificTypeForEntity(t *testing.T) {
	t.Run("full chain", func(t *testing.T) {
		resolver := &stubResolver{curies: []string{"MONDO:0005148", "MONDO:0005015"}}
		normalizer := &stubNormalizer{types: []string{"biolink:NamedThing", "biolink:Disease"}}
		hierarchy := testHierarchy()

		p := New(resolver, normalizer, hierarchy)
		got, err := p.MostSpecificTypeForEntity(context.Background(), nameres.LookupRequest{Entity: "diabetes"})

		require.NoError(t, err)
		require.Equal(t, []string{"biolink:Disease"}, got)
		require.Equal(t, 1, resolver.calls)
		require.Equal(t, 1, normalizer.calls)
		require.Equal(t, []string{"MONDO:0005148", "MONDO:0005015"}, normalizer.gotCuries,
			"stage 1 output feeds stage 2 unchanged")
	})

	t.Run("no CURIEs short-circuits before normalization", func(t *testing.T) {
		resolver := &stubResolver{curies: []string{}}
		normalizer := &stubNormalizer{}
		hierarchy := testHierarchy()

		p := New(resolver, normalizer, hierarchy)
		got, err := p.MostSpecificTypeForEntity(context.Background(), nameres.LookupRequest{Entity: "zzzzxq"})

		require.NoError(t, err)
		require.Empty(t, got)
		require.Zero(t, normalizer.calls, "normalizer must not see an empty batch")
		require.Zero(t, hierarchy.calls)
	})

	t.Run("no types short-circuits before filtering", func(t *testing.T) {
		resolver := &stubResolver{curies: []string{"FAKE:0000"}}
		normalizer := &stubNormalizer{types: []string{}}
		hierarchy := testHierarchy()

		p := New(resolver, normalizer, hierarchy)
		got, err := p.MostSpecificTypeForEntity(context.Background(), nameres.LookupRequest{Entity: "mystery"})

		require.NoError(t, err)
		require.Empty(t, got)
		require.Equal(t, 1, normalizer.calls)
		require.Zero(t, hierarchy.calls)
	})

	t.Run("resolution failure aborts the pipeline", func(t *testing.T) {
		resolveErr := errors.New("name resolution service returned status 502")
		resolver := &stubResolver{err: resolveErr}
		normalizer := &stubNormalizer{}

		p := New(resolver, normalizer, testHierarchy())
		_, err := p.MostSpecificTypeForEntity(context.Background(), nameres.LookupRequest{Entity: "diabetes"})

		require.ErrorIs(t, err, resolveErr, "failure propagates unmodified")
		require.Zero(t, normalizer.calls)
	})

	t.Run("normalization failure aborts the pipeline", func(t *testing.T) {
		normalizeErr := errors.New("node normalization service returned status 500")
		resolver := &stubResolver{curies: []string{"MONDO:0005148"}}
		normalizer := &stubNormalizer{err: normalizeErr}
		hierarchy := testHierarchy()

		p := New(resolver, normalizer, hierarchy)
		_, err := p.MostSpecificTypeForEntity(context.Background(), nameres.LookupRequest{Entity: "diabetes"})

		require.ErrorIs(t, err, normalizeErr)
		require.Zero(t, hierarchy.calls)
	})

	t.Run("conflation options reach the normalizer", func(t *testing.T) {
		resolver := &stubResolver{curies: []string{"CHEBI:15365"}}
		normalizer := &stubNormalizer{types: []string{"biolink:Gene"}}

		p := New(resolver, normalizer, testHierarchy(),
			WithConflation(nodenorm.Options{Conflate: true, DrugChemicalConflate: true}))
		_, err := p.MostSpecificTypeForEntity(context.Background(), nameres.LookupRequest{Entity: "aspirin"})

		require.NoError(t, err)
		require.True(t, normalizer.gotOpts.Conflate)
		require.True(t, normalizer.gotOpts.DrugChemicalConflate)
	})
}
