// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured logging
// with configurable log levels and output formats. Logs go to stderr so that the
// interactive session on stdout is never interleaved with diagnostics.
package logger
