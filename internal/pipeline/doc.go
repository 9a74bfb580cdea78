// Package pipeline chains name resolution, node normalization, and the
// most-specific-type filter into one operation: from a free-text entity
// name to the most specific Biolink types describing it.
//
// The three stages run strictly in order. An empty result at any stage
// short-circuits the rest of the pipeline and yields an empty answer; a
// remote failure at any stage aborts it and propagates unmodified.
package pipeline
