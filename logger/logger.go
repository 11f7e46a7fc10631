package logger

import (
	"fmt"
	"os"

	"github.com/ezsoft-tech/loggy/core"
	"github.com/ezsoft-tech/loggy/handler"
	"github.com/ezsoft-tech/loggy/table"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the main logging interface (immutable)
type Logger struct {
	handler    handler.Handler
	renderer   table.Renderer
	width      core.Width
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler    handler.Handler
	width      core.Width
	colorize   bool
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		width:      core.Medium, // Default table width
		callerSkip: 3,           // Default skip for GetCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithWidth sets the default table width
func (b *Builder) WithWidth(w core.Width) *Builder {
	b.width = w
	return b
}

// WithColor enables ANSI color around rendered tables
func (b *Builder) WithColor(enabled bool) *Builder {
	b.colorize = enabled
	return b
}

// WithCallerSkip adjusts the stack depth used to resolve the call
// site, for wrappers that add frames of their own.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:    b.handler,
		renderer:   table.Renderer{Colorize: b.colorize},
		width:      b.width,
		callerSkip: b.callerSkip,
	}
}

// logSkip builds a record, renders it, and hands the table to the
// sink. skip is the caller depth relative to this function.
func (l *Logger) logSkip(level core.Level, msg interface{}, opts []Option, skip int) {
	if !loggingEnabled {
		return
	}
	if l.handler == nil {
		return
	}

	rec := core.GetRecord()
	rec.Message = msg
	rec.Level = level
	rec.Width = l.width
	rec.Format = core.FormatPlain
	rec.Timestamp = core.Timestamp()

	caller := core.GetCaller(skip)
	rec.Source = caller.Stem
	rec.Function = caller.Function
	rec.Line = caller.Line

	for _, opt := range opts {
		opt(rec)
	}

	out := l.renderer.Render(rec)
	core.PutRecord(rec)

	_ = l.handler.Handle(level, out)
}

// Verbose logs a verbose message
func (l *Logger) Verbose(msg interface{}, opts ...Option) {
	l.logSkip(core.VerboseLevel, msg, opts, l.callerSkip)
}

// Debug logs a debug message
func (l *Logger) Debug(msg interface{}, opts ...Option) {
	l.logSkip(core.DebugLevel, msg, opts, l.callerSkip)
}

// Info logs an info message
func (l *Logger) Info(msg interface{}, opts ...Option) {
	l.logSkip(core.InfoLevel, msg, opts, l.callerSkip)
}

// Warning logs a warning message
func (l *Logger) Warning(msg interface{}, opts ...Option) {
	l.logSkip(core.WarningLevel, msg, opts, l.callerSkip)
}

// Error logs an error message
func (l *Logger) Error(msg interface{}, opts ...Option) {
	l.logSkip(core.ErrorLevel, msg, opts, l.callerSkip)
}

// Fatal logs a fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg interface{}, opts ...Option) {
	l.logSkip(core.FatalLevel, msg, opts, l.callerSkip)
	osExit(1)
}

// Verbosef logs a formatted verbose message
func (l *Logger) Verbosef(format string, args ...interface{}) {
	l.logSkip(core.VerboseLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logSkip(core.DebugLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logSkip(core.InfoLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logSkip(core.WarningLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logSkip(core.ErrorLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Fatalf logs a formatted fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logSkip(core.FatalLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
	osExit(1)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
