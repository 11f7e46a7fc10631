package core

import (
	"fmt"

	"github.com/fatih/color"
)

// Level represents the severity of a log record
type Level int8

const (
	// VerboseLevel for very detailed tracing output
	VerboseLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages (causes os.Exit(1) at the logger layer)
	FatalLevel
)

// String returns the display symbol of the level as it appears in the
// rendered table header.
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// levelAttrs maps each level to its terminal color attribute.
var levelAttrs = [...]color.Attribute{
	VerboseLevel: color.FgWhite,
	DebugLevel:   color.FgCyan,
	InfoLevel:    color.FgGreen,
	WarningLevel: color.FgYellow,
	ErrorLevel:   color.FgRed,
	FatalLevel:   color.FgHiRed,
}

// pre-formatted open sequences to avoid Sprintf on the render path
var levelOpen [len(levelAttrs)]string

const colorReset = "\x1b[0m"

func init() {
	for l, attr := range levelAttrs {
		levelOpen[l] = fmt.Sprintf("\x1b[%dm", attr)
	}
}

// Color returns the ANSI open/close escape pair for the level. Both
// strings are empty for out-of-range levels so callers can always
// concatenate them unconditionally.
func (l Level) Color() (open, close string) {
	if l < 0 || int(l) >= len(levelOpen) {
		return "", ""
	}
	return levelOpen[l], colorReset
}
