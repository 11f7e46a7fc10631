package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/ezsoft-tech/loggy/core"
	"github.com/ezsoft-tech/loggy/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a synchronous console handler.
	// Color is on only when stdout is an interactive terminal.
	h := handler.NewConsoleHandler(handler.ConsoleConfig{})

	colorize := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithWidth(core.Medium).
		WithColor(colorize).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. They
// call logSkip directly so the stack depth matches the method path.

// Verbose logs a verbose message using the default logger
func Verbose(msg interface{}, opts ...Option) {
	l := Default()
	l.logSkip(core.VerboseLevel, msg, opts, l.callerSkip)
}

// Debug logs a debug message using the default logger
func Debug(msg interface{}, opts ...Option) {
	l := Default()
	l.logSkip(core.DebugLevel, msg, opts, l.callerSkip)
}

// Info logs an info message using the default logger
func Info(msg interface{}, opts ...Option) {
	l := Default()
	l.logSkip(core.InfoLevel, msg, opts, l.callerSkip)
}

// Warning logs a warning message using the default logger
func Warning(msg interface{}, opts ...Option) {
	l := Default()
	l.logSkip(core.WarningLevel, msg, opts, l.callerSkip)
}

// Error logs an error message using the default logger
func Error(msg interface{}, opts ...Option) {
	l := Default()
	l.logSkip(core.ErrorLevel, msg, opts, l.callerSkip)
}

// Fatal logs a fatal message using the default logger and exits the program
func Fatal(msg interface{}, opts ...Option) {
	l := Default()
	l.logSkip(core.FatalLevel, msg, opts, l.callerSkip)
	osExit(1)
}

// Verbosef logs a formatted verbose message using the default logger
func Verbosef(format string, args ...interface{}) {
	l := Default()
	l.logSkip(core.VerboseLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	l := Default()
	l.logSkip(core.DebugLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	l := Default()
	l.logSkip(core.InfoLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) {
	l := Default()
	l.logSkip(core.WarningLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	l := Default()
	l.logSkip(core.ErrorLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
}

// Fatalf logs a formatted fatal message using the default logger and exits
func Fatalf(format string, args ...interface{}) {
	l := Default()
	l.logSkip(core.FatalLevel, fmt.Sprintf(format, args...), nil, l.callerSkip)
	osExit(1)
}
