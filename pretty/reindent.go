package pretty

import "strings"

// indentUnit is the indentation step shared by all pretty printers.
const indentUnit = "  "

// Reindent reflows a one-line textual description of a composite value
// (bracket or paren delimited, comma separated) into an indented
// multi-line form. It is a character scanner, not a parser: brackets
// inside quoted text are treated like any other bracket, and
// unbalanced input produces indentation drift rather than an error.
func Reindent(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '[', '(':
			depth++
			b.WriteByte(c)
			newlineIndent(&b, depth)
		case ',':
			b.WriteByte(c)
			if i+1 < len(s) && s[i+1] == ' ' {
				i++
			}
			newlineIndent(&b, depth)
		case ']', ')':
			depth--
			newlineIndent(&b, depth)
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func newlineIndent(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	if depth < 0 {
		depth = 0
	}
	for i := 0; i < depth; i++ {
		b.WriteString(indentUnit)
	}
}
