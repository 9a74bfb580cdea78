package biolink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedHierarchy is a small injected ancestor lookup standing in for the
// full model.
type fixedHierarchy map[string][]string

func (h fixedHierarchy) ReflexiveAncestors(label string) []string {
	return h[label]
}

func testHierarchy() fixedHierarchy {
	return fixedHierarchy{
		"biolink:NamedThing": {"biolink:NamedThing"},
		"biolink:Disease":    {"biolink:Disease", "biolink:DiseaseOrPhenotypicFeature", "biolink:NamedThing"},
		"biolink:Gene":       {"biolink:Gene", "biolink:NamedThing"},
		"biolink:DiseaseOrPhenotypicFeature": {
			"biolink:DiseaseOrPhenotypicFeature", "biolink:NamedThing",
		},
	}
}

func TestMostSpecific(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  []string
	}{
		{
			name:  "ancestor is dropped",
			types: []string{"biolink:NamedThing", "biolink:Disease"},
			want:  []string{"biolink:Disease"},
		},
		{
			name:  "unrelated labels are both retained",
			types: []string{"biolink:Disease", "biolink:Gene"},
			want:  []string{"biolink:Disease", "biolink:Gene"},
		},
		{
			name:  "empty input yields empty output",
			types: []string{},
			want:  []string{},
		},
		{
			name:  "single label is retained",
			types: []string{"biolink:NamedThing"},
			want:  []string{"biolink:NamedThing"},
		},
		{
			name:  "repeats are harmless",
			types: []string{"biolink:Disease", "biolink:Disease"},
			want:  []string{"biolink:Disease"},
		},
		{
			name:  "chain keeps only the leaf",
			types: []string{"biolink:NamedThing", "biolink:DiseaseOrPhenotypicFeature", "biolink:Disease"},
			want:  []string{"biolink:Disease"},
		},
		{
			name:  "unknown labels survive",
			types: []string{"biolink:Disease", "custom:Thing"},
			want:  []string{"biolink:Disease", "custom:Thing"},
		},
	}

	h := testHierarchy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MostSpecific(h, tt.types))
		})
	}
}

func TestMostSpecificIsIdempotent(t *testing.T) {
	h := testHierarchy()

	once := MostSpecific(h, []string{"biolink:NamedThing", "biolink:Disease", "biolink:Gene"})
	twice := MostSpecific(h, once)

	require.Equal(t, once, twice)
}

func TestMostSpecificIsOrderIndependent(t *testing.T) {
	h := testHierarchy()

	permutations := [][]string{
		{"biolink:NamedThing", "biolink:Disease", "biolink:Gene"},
		{"biolink:Gene", "biolink:NamedThing", "biolink:Disease"},
		{"biolink:Disease", "biolink:Gene", "biolink:NamedThing"},
	}

	want := MostSpecific(h, permutations[0])
	for _, p := range permutations[1:] {
		require.Equal(t, want, MostSpecific(h, p))
	}
}

func TestMostSpecificAgainstBundledModel(t *testing.T) {
	toolkit := mustToolkit(t)

	t.Run("class chain", func(t *testing.T) {
		got := MostSpecific(toolkit, []string{
			"biolink:NamedThing",
			"biolink:DiseaseOrPhenotypicFeature",
			"biolink:Disease",
		})
		require.Equal(t, []string{"biolink:Disease"}, got)
	})

	t.Run("mixin ancestry counts", func(t *testing.T) {
		got := MostSpecific(toolkit, []string{"biolink:GeneOrGeneProduct", "biolink:Protein"})
		require.Equal(t, []string{"biolink:Protein"}, got)
	})

	t.Run("typical normalizer output for a chemical", func(t *testing.T) {
		got := MostSpecific(toolkit, []string{
			"biolink:SmallMolecule",
			"biolink:MolecularEntity",
			"biolink:ChemicalEntity",
			"biolink:NamedThing",
		})
		require.Equal(t, []string{"biolink:SmallMolecule"}, got)
	})
}
