package logger

import "github.com/ezsoft-tech/loggy/core"

// Option customizes a single log call's record before rendering.
type Option func(*core.Record)

// WithWidth overrides the logger's table width for this call
func WithWidth(w core.Width) Option {
	return func(r *core.Record) {
		r.Width = w
	}
}

// WithFormat selects the rendering format for this call
func WithFormat(f core.Format) Option {
	return func(r *core.Record) {
		r.Format = f
	}
}

// AsModel renders the message as a type-annotated literal
func AsModel() Option {
	return WithFormat(core.FormatModel)
}

// AsJSON renders the message as canonical indented JSON
func AsJSON() Option {
	return WithFormat(core.FormatJSON)
}
