// Package log defines the pluggable event log for document operations.
//
// The library itself stays quiet: events are delivered to whatever
// Logger the application installs on the document. Pass nil or
// NoopLogger to disable logging, or SlogAdapter to route events into a
// standard slog.Logger during development.
package log
