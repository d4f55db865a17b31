// Package service contains the application-specific use cases. It
// coordinates the catalog, the filter engine and the cross-reference
// resolver to answer the queries the delivery mechanisms (HTTP API, command
// line) need.
//
// Services receive their dependencies through constructor injection and log
// through the request-scoped logger. They translate "no such record" into
// domain errors only where a caller asked for one record by identifier;
// every filtering query returns a possibly empty result instead.
package service
