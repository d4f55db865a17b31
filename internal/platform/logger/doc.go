// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request-scoped loggers and trace IDs travel in
// the context; the ContextHandler copies the trace ID onto every record so
// log lines can be correlated with error responses.
package logger
