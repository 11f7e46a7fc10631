//go:build !loggy_off

package logger

// loggingEnabled is true in normal builds. Building with -tags
// loggy_off turns every dispatch method into a constant-false branch
// the compiler eliminates, so disabled logging has zero cost.
const loggingEnabled = true
