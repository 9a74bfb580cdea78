// Package nameres is a client for the Translator SRI Name Resolution
// service, which looks up free-text entity names and returns ranked
// candidate CURIEs.
//
// The client is a thin passthrough: ranking is owned by the remote
// service, zero matches is a valid empty result, and any transport or
// HTTP failure propagates to the caller unmodified.
package nameres
