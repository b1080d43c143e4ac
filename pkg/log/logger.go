package log

// Logger is the interface applications implement to receive document
// events. Implementations must be safe for concurrent use.
type Logger interface {
	// Log records an event. Implementations should return quickly;
	// blocking here blocks the operation that produced the event.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
