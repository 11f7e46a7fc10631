package textwidth

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap splits s into lines of at most maxWidth terminal columns using
// greedy word wrapping on space boundaries. Words wider than the
// budget are hard-split cluster by cluster, so a line only exceeds
// maxWidth when a single cluster already does. Empty input yields one
// empty line, never an empty slice. A non-positive maxWidth returns
// the text unsplit as a single line.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{s}
	}

	// Split preserves empty tokens so runs of spaces survive wrapping.
	words := strings.Split(s, " ")

	var lines []string
	current := ""
	for _, word := range words {
		if current != "" {
			if candidate := current + " " + word; StringWidth(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = ""
		}
		if StringWidth(word) <= maxWidth {
			current = word
			continue
		}
		// Hard split: flush maxWidth-wide chunks, keep the tail as the
		// current line so following words can join it.
		chunk := ""
		chunkWidth := 0
		state := -1
		rest := word
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			w := ClusterWidth(cluster)
			if chunkWidth+w > maxWidth && chunk != "" {
				lines = append(lines, chunk)
				chunk = ""
				chunkWidth = 0
			}
			chunk += cluster
			chunkWidth += w
		}
		current = chunk
	}
	lines = append(lines, current)
	return lines
}

// PadRight pads s with spaces to the given terminal column width.
// Strings already at or beyond the width are returned unchanged.
func PadRight(s string, width int) string {
	w := StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
