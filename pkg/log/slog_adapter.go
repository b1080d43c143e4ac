package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes document events to an slog.Logger.
// Useful for development when you want to see tree operations in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("op", event.Op.String()),
	}
	if event.Kind != "" {
		attrs = append(attrs, slog.String("kind", event.Kind))
	}
	if event.ID != "" {
		attrs = append(attrs, slog.String("id", event.ID))
	}
	if event.MetaID != "" {
		attrs = append(attrs, slog.String("meta_id", event.MetaID))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "document", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
