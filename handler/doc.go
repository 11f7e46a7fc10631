// Package handler provides the Handler interface and the console sink
// that rendered tables are written to.
//
// The renderer returns one complete table string per log call; the
// sink's only job is to get that string onto the terminal in one
// piece. In synchronous mode (the default) a mutex serializes writes
// so tables from concurrent goroutines never interleave. In async mode
// tables are sent to a bounded channel and written by a background
// goroutine; a full queue drops the newest table rather than stalling
// the caller, and Close drains the queue with a timeout.
//
// Dropped and processed counts are tracked via the Stats type, which
// can be queried at runtime.
package handler
