package logger

import "github.com/ezsoft-tech/loggy/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
)

// Width re-exports for convenience
type Width = core.Width

const (
	Small  = core.Small
	Medium = core.Medium
	Large  = core.Large
)

// Custom returns a width with an arbitrary column count
func Custom(columns int) Width {
	return core.Custom(columns)
}

// Format re-exports for convenience
type Format = core.Format

const (
	FormatPlain = core.FormatPlain
	FormatModel = core.FormatModel
	FormatJSON  = core.FormatJSON
)
