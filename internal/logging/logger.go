// Package logging defines the structured-logging interface the rest of the
// project depends on, so packages never import a concrete logging backend.
package logging

import "context"

// Logger accepts a message plus alternating key/value pairs:
//
//	log.Info(ctx, "http server listening", "addr", addr)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a derived logger whose records always carry the given
	// key/value pairs.
	With(args ...any) Logger
}
