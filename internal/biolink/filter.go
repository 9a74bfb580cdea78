package biolink

import "slices"

// AncestorSource supplies the reflexive, formatted ancestor set of a
// type label, or nil for labels it does not know. *Toolkit satisfies it;
// tests substitute small fixed hierarchies.
type AncestorSource interface {
	ReflexiveAncestors(label string) []string
}

// MostSpecific returns the labels of types that are not ancestors of any
// other label in types: the maximal elements of the input under the
// hierarchy's is-a partial order.
//
// A label L is dropped exactly when L appears in the reflexive ancestor
// set of some other label M in the input. Incomparable labels are all
// retained, repeats are collapsed, and labels unknown to the hierarchy
// are retained (nothing claims them as an ancestor). The result is
// sorted; an empty input yields an empty result.
func MostSpecific(h AncestorSource, types []string) []string {
	labels := dedupe(types)

	ancestorSets := make(map[string][]string, len(labels))
	for _, label := range labels {
		ancestorSets[label] = h.ReflexiveAncestors(label)
	}

	mostSpecific := make([]string, 0, len(labels))
	for _, label := range labels {
		isAncestor := false
		for _, other := range labels {
			if other == label {
				continue
			}
			if slices.Contains(ancestorSets[other], label) {
				isAncestor = true
				break
			}
		}
		if !isAncestor {
			mostSpecific = append(mostSpecific, label)
		}
	}

	slices.Sort(mostSpecific)

	return mostSpecific
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	return out
}
