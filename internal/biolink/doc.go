// Package biolink provides a local, read-only view of the Biolink Model
// type hierarchy.
//
// The Toolkit is loaded from a bundled subset of the model covering the
// class and predicate hierarchies: ancestor and descendant traversal,
// element lookup, and name/CURIE formatting. It also hosts the
// most-specific-type filter, which keeps only the labels of a set that
// are not ancestors of any other label in that set.
//
// Element names are accepted in any of the forms the model community
// uses: "disease", "Disease", "biolink:Disease", or "named_thing".
package biolink
