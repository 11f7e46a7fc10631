package textwidth

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ClusterWidth returns the number of terminal columns a single
// grapheme cluster occupies: 0, 1, or 2.
//
// Rules, checked in order: a cluster composed entirely of Unicode
// format code points (zero-width joiners, directional marks) occupies
// no column; a cluster containing any emoji-presentation, symbol, or
// East-Asian-wide code point occupies two; everything else occupies
// one.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}

	allFormat := true
	wide := false
	for _, r := range cluster {
		if !unicode.Is(unicode.Cf, r) {
			allFormat = false
		}
		if unicode.Is(unicode.So, r) || runewidth.RuneWidth(r) == 2 {
			wide = true
		}
	}

	if allFormat {
		return 0
	}
	if wide {
		return 2
	}
	return 1
}

// StringWidth returns the number of terminal columns s occupies,
// summed over grapheme clusters. The empty string occupies zero.
func StringWidth(s string) int {
	total := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		total += ClusterWidth(cluster)
	}
	return total
}
