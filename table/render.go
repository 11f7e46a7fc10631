package table

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/ezsoft-tech/loggy/core"
	"github.com/ezsoft-tech/loggy/pretty"
	"github.com/ezsoft-tech/loggy/textwidth"
)

// labelColumn is the fixed width of the header label column.
const labelColumn = 8

// Renderer lays out log records as bordered tables. The zero value
// renders without color.
type Renderer struct {
	// Colorize wraps the table in the level's ANSI color pair.
	Colorize bool
}

// Render produces the complete multi-line table for a record,
// terminated with a trailing newline. It never fails: degenerate input
// (zero width, empty message) still yields a minimal valid table.
func (r Renderer) Render(rec *core.Record) string {
	baseInner := rec.Width.Inner()

	var body []string
	switch rec.Format {
	case core.FormatModel:
		body = strings.Split(pretty.Model(rec.Message, baseInner), "\n")
	case core.FormatJSON:
		body = strings.Split(pretty.JSON(rec.Message), "\n")
	default:
		body = plainBody(pretty.Plain(rec.Message), baseInner)
	}

	// The inner width is the requested budget or the widest line,
	// whichever is larger; no content may overflow its border.
	inner := baseInner
	for _, line := range body {
		if w := textwidth.StringWidth(line); w > inner {
			inner = w
		}
	}

	levelLeft := padLabel("Level:") + rec.Level.String()
	timeRight := "Time: " + rec.Timestamp
	classLine := padLabel("Class:") + rec.Source
	methodLine := padLabel("Method:") + rec.Function
	lineLine := padLabel("Line:") + strconv.Itoa(rec.Line)

	// Header content (a long signature, a wide timestamp) can force
	// the table wider than the message did.
	for _, n := range [...]int{
		textwidth.StringWidth(levelLeft) + 1 + textwidth.StringWidth(timeRight),
		textwidth.StringWidth(classLine),
		textwidth.StringWidth(methodLine),
		textwidth.StringWidth(lineLine),
	} {
		if n > inner {
			inner = n
		}
	}

	gap := inner - textwidth.StringWidth(levelLeft) - textwidth.StringWidth(timeRight)
	if gap < 1 {
		gap = 1
	}
	levelLine := levelLeft + strings.Repeat(" ", gap) + timeRight

	open, closing := "", ""
	if r.Colorize {
		open, closing = rec.Level.Color()
	}

	buf := getBuffer()
	defer putBuffer(buf)

	border := "+" + strings.Repeat("-", inner+2) + "+"
	buf.WriteString(open)
	buf.WriteString(border)
	buf.WriteByte('\n')
	writeRow(buf, levelLine, inner)
	writeRow(buf, classLine, inner)
	writeRow(buf, methodLine, inner)
	writeRow(buf, lineLine, inner)
	writeRow(buf, strings.Repeat("-", inner), inner)
	for _, line := range body {
		writeRow(buf, line, inner)
	}
	buf.WriteString(border)
	buf.WriteString(closing)
	buf.WriteByte('\n')

	return buf.String()
}

// plainBody splits the message into paragraphs on literal newlines and
// word-wraps each one, so multi-line plain messages never break the
// border.
func plainBody(msg string, maxWidth int) []string {
	paragraphs := strings.Split(msg, "\n")
	body := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		body = append(body, textwidth.Wrap(p, maxWidth)...)
	}
	return body
}

// writeRow writes one content row, right-padding it to the inner width
// by display width so wide characters keep the borders aligned.
func writeRow(buf *bytes.Buffer, line string, inner int) {
	buf.WriteString("| ")
	buf.WriteString(textwidth.PadRight(line, inner))
	buf.WriteString(" |\n")
}

// padLabel pads a header label to the fixed label column.
func padLabel(label string) string {
	if len(label) >= labelColumn {
		return label
	}
	return label + strings.Repeat(" ", labelColumn-len(label))
}
