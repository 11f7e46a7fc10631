package handler

import "github.com/ezsoft-tech/loggy/core"

// Handler defines the interface for rendered-table sinks
type Handler interface {
	// Handle emits one rendered table. The string is a complete
	// bordered table including its trailing newline and must be
	// written atomically so concurrent logs never interleave.
	Handle(level core.Level, table string) error

	// Close closes the handler and releases resources
	Close() error
}
