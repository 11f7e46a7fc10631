// Package pretty converts structured payloads into indented,
// human-readable text before table layout.
//
// Three printers share one contract: they take an arbitrary payload
// and always return a string. Model renders type-annotated literals
// resembling constructor syntax, JSON renders canonical 2-space
// indented JSON with sorted keys, and Reindent is the shared fallback
// that reflows bracketed one-line descriptions heuristically.
//
// Failure inside Model or JSON is never surfaced: each tier that
// cannot produce its preferred representation silently degrades to the
// next, ending at Reindent over the payload's generic string form.
// Values can opt out of the structural encode entirely by implementing
// Describable.
package pretty
