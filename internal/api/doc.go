// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the catalog service, translating query strings into filter criteria
// and results into JSON. Every endpoint is a read-only GET.
package api
