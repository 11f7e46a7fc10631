// Package core defines the shared types used across the Loggy
// formatter.
//
// It provides the Level type with its display symbols and ANSI color
// pairs, the Width and Format layout selectors, the Record type that
// carries one render call's payload and caller metadata, and the Field
// type for key-value pairs reported by Describable values.
//
// Record objects are pooled via sync.Pool to keep the dispatch path
// allocation-free. Callers get a Record with GetRecord and must return
// it with PutRecord once the sink has consumed the rendered table.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// nested values and will cause an allocation.
//
// The optional coarse clock caches the formatted header timestamp in
// the background. The timestamp has one-second granularity, so a cache
// refreshed every 250ms is indistinguishable from formatting per call.
package core
