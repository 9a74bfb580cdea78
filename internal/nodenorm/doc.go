// Package nodenorm is a client for the Translator SRI Node Normalization
// service, which maps CURIEs to canonical identifiers, equivalent
// identifier sets, and Biolink semantic types.
//
// One request covers a whole batch. A CURIE the service cannot normalize
// maps to a nil record and never fails the batch; transport and HTTP
// failures propagate to the caller unmodified.
package nodenorm
