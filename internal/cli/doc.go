// Package cli implements the coursedir command line client. It runs the same
// catalog queries as the HTTP API against a locally loaded catalog and
// prints the results either as styled text or as JSON.
package cli
