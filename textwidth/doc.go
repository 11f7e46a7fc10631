// Package textwidth measures and wraps text by terminal display
// width rather than byte or rune count.
//
// Table borders only align in a monospace terminal when padding is
// computed from the columns a string actually occupies: combining and
// format code points occupy none, emoji and East-Asian-wide characters
// occupy two. Iteration happens over grapheme clusters (rivo/uniseg)
// so that multi-code-point clusters like family emoji count as one
// unit, with per-rune width classification from mattn/go-runewidth and
// the unicode category tables.
package textwidth
