package core

// Width is the total outer width of a rendered table in terminal
// columns, including the two border characters.
type Width int

const (
	// Small is an 80-column table
	Small Width = 80
	// Medium is a 120-column table
	Medium Width = 120
	// Large is a 160-column table
	Large Width = 160
)

// Custom returns a width with an arbitrary column count. Non-positive
// values are legal and produce a minimal table sized by its content.
func Custom(columns int) Width {
	return Width(columns)
}

// Inner returns the content column budget: the outer width minus the
// two border characters, clamped at zero.
func (w Width) Inner() int {
	if w <= 2 {
		return 0
	}
	return int(w) - 2
}

// Format selects how a record's message is transformed into body text
// before table layout.
type Format uint8

const (
	// FormatPlain stringifies the message and word-wraps it
	FormatPlain Format = iota
	// FormatModel renders the message as an indented, type-annotated literal
	FormatModel
	// FormatJSON renders the message as canonical 2-space-indented JSON
	FormatJSON
)

// String returns the name of the format
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatModel:
		return "model"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}
