package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/translator-sri/bioentity-mcp/internal/nodenorm"
)

func TestFormatNormalizationReport(t *testing.T) {
	node := &nodenorm.NormalizedNode{
		ID: nodenorm.Identifier{
			Identifier:  "MONDO:0005148",
			Label:       "type 2 diabetes mellitus",
			Description: "A type of diabetes mellitus.",
		},
		EquivalentIdentifiers: []nodenorm.EquivalentIdentifier{
			{Identifier: "MONDO:0005148", Types: []string{"biolink:Disease"}},
			{Identifier: "DOID:9352"},
			{Identifier: "MESH:D003924"},
			{Identifier: "NCIT:C26747"},
			{Identifier: "SNOMEDCT:44054006"},
			{Identifier: "UMLS:C0011860"},
			{Identifier: "MEDDRA:10067585", Types: []string{"biolink:DiseaseOrPhenotypicFeature"}},
		},
		Types: []string{"biolink:Disease"},
	}

	t.Run("settings banner reflects enabled options", func(t *testing.T) {
		report := formatNormalizationReport([]string{"MONDO:0005148"},
			nodenorm.Options{Conflate: true, DrugChemicalConflate: true},
			map[string]*nodenorm.NormalizedNode{"MONDO:0005148": node})

		require.True(t, strings.HasPrefix(report,
			"Normalized 1 CURIE(s) (gene/protein conflation: ON; drug/chemical conflation: ON):"))
	})

	t.Run("no banner when everything is off", func(t *testing.T) {
		report := formatNormalizationReport([]string{"MONDO:0005148"}, nodenorm.Options{},
			map[string]*nodenorm.NormalizedNode{"MONDO:0005148": node})

		require.True(t, strings.HasPrefix(report, "Normalized 1 CURIE(s):"))
	})

	t.Run("equivalent identifiers are capped at five", func(t *testing.T) {
		report := formatNormalizationReport([]string{"MONDO:0005148"}, nodenorm.Options{},
			map[string]*nodenorm.NormalizedNode{"MONDO:0005148": node})

		require.Contains(t, report, "Equivalent IDs: DOID:9352, MESH:D003924, NCIT:C26747, SNOMEDCT:44054006, UMLS:C0011860 (+1 more)")
	})

	t.Run("description only when requested", func(t *testing.T) {
		withoutDesc := formatNormalizationReport([]string{"MONDO:0005148"}, nodenorm.Options{},
			map[string]*nodenorm.NormalizedNode{"MONDO:0005148": node})
		require.NotContains(t, withoutDesc, "Description:")

		withDesc := formatNormalizationReport([]string{"MONDO:0005148"}, nodenorm.Options{Description: true},
			map[string]*nodenorm.NormalizedNode{"MONDO:0005148": node})
		require.Contains(t, withDesc, "Description: A type of diabetes mellitus.")
	})

	t.Run("individual types are unioned and sorted", func(t *testing.T) {
		report := formatNormalizationReport([]string{"MONDO:0005148"}, nodenorm.Options{IndividualTypes: true},
			map[string]*nodenorm.NormalizedNode{"MONDO:0005148": node})

		require.Contains(t, report, "Types: biolink:Disease, biolink:DiseaseOrPhenotypicFeature")
	})

	t.Run("null and missing entries are distinguished", func(t *testing.T) {
		report := formatNormalizationReport([]string{"FAKE:0000", "GONE:1"}, nodenorm.Options{},
			map[string]*nodenorm.NormalizedNode{"FAKE:0000": nil})

		require.Contains(t, report, "**FAKE:0000:** Not found\n")
		require.Contains(t, report, "**GONE:1:** Not found in response\n")
	})
}
