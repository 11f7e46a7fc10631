//go:build loggy_off

package logger

// loggingEnabled is false when built with -tags loggy_off; all
// rendering and sink code behind it is dead-code eliminated.
const loggingEnabled = false
