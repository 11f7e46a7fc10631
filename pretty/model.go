package pretty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/ezsoft-tech/loggy/core"
	"github.com/ezsoft-tech/loggy/textwidth"
)

// Model renders an arbitrary value as an indented, type-annotated
// literal: keyed values as TypeName(key: value, ...) with sorted keys,
// sequences as bracketed element lists, strings double-quoted. Long
// string values hard-wrap at the width budget with continuation lines
// indented beneath their field; width <= 0 disables wrapping.
//
// Strings are reflowed with Reindent directly, and any value that
// cannot be encoded falls back to Reindent over its generic string
// form. Model never fails.
func Model(v interface{}, width int) string {
	if s, ok := v.(string); ok {
		return Reindent(s)
	}

	var b strings.Builder
	if !writeModel(&b, v, 0, width) {
		return Reindent(fmt.Sprint(v))
	}
	return b.String()
}

// writeModel renders v at the given indent level. It reports false
// without writing when v cannot be encoded.
func writeModel(b *strings.Builder, v interface{}, indent, width int) bool {
	if d, ok := v.(Describable); ok {
		writeDescribed(b, d, indent, width)
		return true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		// Element-wise so that Describable elements keep their
		// capability through the recursion.
		if rv.Len() == 0 {
			b.WriteString("[]")
			return true
		}
		b.WriteString("[\n")
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(",\n")
			}
			writePad(b, indent+1)
			b.WriteString(modelValue(rv.Index(i).Interface(), indent+1, width))
		}
		b.WriteString("\n")
		writePad(b, indent)
		b.WriteString("]")
		return true
	}

	tree, ok := encodeTree(v)
	if !ok {
		return false
	}
	writeTree(b, tree, typeName(v), indent, width)
	return true
}

// modelValue renders a nested value into its own buffer so a failed
// encode never leaves partial output behind; the fallback is the
// quoted generic string form.
func modelValue(v interface{}, indent, width int) string {
	var sb strings.Builder
	if !writeModel(&sb, v, indent, width) {
		return `"` + fmt.Sprint(v) + `"`
	}
	return sb.String()
}

// writeDescribed renders a Describable as TypeName(key: value, ...)
// with keys in sorted order.
func writeDescribed(b *strings.Builder, d Describable, indent, width int) {
	name, fields := d.Describe()

	open, closing := "{", "}"
	if name != "" {
		open, closing = name+"(", ")"
	}
	if len(fields) == 0 {
		b.WriteString(open + closing)
		return
	}

	sorted := make([]core.Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	b.WriteString(open + "\n")
	for i, f := range sorted {
		if i > 0 {
			b.WriteString(",\n")
		}
		writePad(b, indent+1)
		switch {
		case f.Type == core.AnyType:
			b.WriteString(f.Key + ": ")
			b.WriteString(modelValue(f.Any, indent+1, width))
		case f.Quoted():
			writeStringPair(b, f.Key, f.StringValue(), indent+1, width)
		default:
			b.WriteString(f.Key + ": " + f.StringValue())
		}
	}
	b.WriteString("\n")
	writePad(b, indent)
	b.WriteString(closing)
}

// encodeTree converts a value into a generic JSON-like tree via an
// encoding round trip, preserving number text with json.Number.
func encodeTree(v interface{}) (interface{}, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, false
	}
	return tree, true
}

// writeTree renders a generic tree. name annotates keyed maps at this
// level; nested maps have no runtime type information and render with
// plain braces.
func writeTree(b *strings.Builder, v interface{}, name string, indent, width int) {
	switch t := v.(type) {
	case map[string]interface{}:
		open, closing := "{", "}"
		if name != "" {
			open, closing = name+"(", ")"
		}
		if len(t) == 0 {
			b.WriteString(open + closing)
			return
		}

		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(open + "\n")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(",\n")
			}
			writePad(b, indent+1)
			if s, ok := t[k].(string); ok {
				writeStringPair(b, k, s, indent+1, width)
			} else {
				b.WriteString(k + ": ")
				writeTree(b, t[k], "", indent+1, width)
			}
		}
		b.WriteString("\n")
		writePad(b, indent)
		b.WriteString(closing)

	case []interface{}:
		if len(t) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, elem := range t {
			if i > 0 {
				b.WriteString(",\n")
			}
			writePad(b, indent+1)
			writeTree(b, elem, "", indent+1, width)
		}
		b.WriteString("\n")
		writePad(b, indent)
		b.WriteString("]")

	case string:
		b.WriteString(`"` + t + `"`)
	case json.Number:
		b.WriteString(t.String())
	case nil:
		b.WriteString("null")
	default:
		fmt.Fprintf(b, "%v", t)
	}
}

// writeStringPair writes `key: "value"` at the field's indent,
// hard-wrapping the quoted value when the line exceeds the width
// budget. Continuation lines indent one unit beneath the field so they
// read as part of the value, not as sibling fields.
func writeStringPair(b *strings.Builder, key, val string, fieldIndent, width int) {
	quoted := `"` + val + `"`
	lineWidth := len(indentUnit)*fieldIndent + textwidth.StringWidth(key) + 2 + textwidth.StringWidth(quoted)
	if width <= 0 || lineWidth <= width {
		b.WriteString(key + ": " + quoted)
		return
	}

	budget := width - len(indentUnit)*(fieldIndent+1)
	if budget < 1 {
		budget = 1
	}
	parts := textwidth.Wrap(quoted, budget)
	b.WriteString(key + ": " + parts[0])
	for _, part := range parts[1:] {
		b.WriteString("\n")
		writePad(b, fieldIndent+1)
		b.WriteString(part)
	}
}

// typeName returns a value's bare runtime type name: pointer
// indirection, package qualifier, and any generic parameter suffix
// stripped. Unnamed types yield the empty string.
func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func writePad(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString(indentUnit)
	}
}
