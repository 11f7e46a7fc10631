// Package table composes wrapped text, pretty-printed payloads, and
// caller metadata into the final bordered table string.
//
// Layout is computed in two passes: the body and the requested width
// establish a candidate inner width, then the four header lines may
// widen it further, after which every content line is right-padded by
// display width to exactly the inner width. The result is that all
// rows of a table are the same width regardless of what the message or
// the caller metadata contained.
//
// Rendering is total. Pathological input degrades the layout (a
// zero-width request produces a table just wide enough for its
// headers) but never produces an error.
package table
