package textwidth

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxWidth int
		want     []string
	}{
		{"fits", "hello world", 11, []string{"hello world"}},
		{"wraps at space", "hello world", 5, []string{"hello", "world"}},
		{"greedy accumulate", "a b c d", 3, []string{"a b", "c d"}},
		{"empty input", "", 10, []string{""}},
		{"single word fits", "hello", 10, []string{"hello"}},
		{"hard split long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word mid-sentence", "hi abcdefghij", 4, []string{"hi", "abcd", "efgh", "ij"}},
		{"double space preserved", "a  b", 10, []string{"a  b"}},
		{"zero width returns unsplit", "hello world", 0, []string{"hello world"}},
		{"negative width returns unsplit", "hello", -1, []string{"hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.s, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.s, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrap_EmojiHardSplit(t *testing.T) {
	got := Wrap("hi \U0001F642\U0001F642\U0001F642", 4)
	want := []string{"hi", "\U0001F642\U0001F642", "\U0001F642"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestWrap_JoinPreservesText(t *testing.T) {
	s := "the quick brown fox jumps over the lazy dog"
	lines := Wrap(s, 10)
	if strings.Join(lines, " ") != s {
		t.Errorf("Expected joined lines to reproduce input, got: %q", lines)
	}
}

func TestWrap_WidthInvariant(t *testing.T) {
	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		"supercalifragilisticexpialidocious",
		"a \U0001F642 b \U0001F642\U0001F642\U0001F642\U0001F642 c",
		"",
	}

	for _, s := range inputs {
		for _, maxWidth := range []int{1, 2, 4, 8, 20} {
			for _, line := range Wrap(s, maxWidth) {
				if w := StringWidth(line); w > maxWidth && maxWidth >= 2 {
					t.Errorf("Wrap(%q, %d) produced overwide line %q (width %d)", s, maxWidth, line, w)
				}
			}
		}
	}
}
