package pretty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// JSON renders a payload as canonical JSON: 2-space indentation and
// lexicographically sorted object keys, so semantically equal
// documents produce byte-identical text. String payloads are scanned
// for embedded JSON: text before the first '{' or '[' is preserved
// verbatim above the pretty block. Non-string payloads go through a
// structural encode first.
//
// Anything that cannot yield a JSON object or array (malformed text,
// bare scalars, unencodable values) falls back to Reindent over the
// generic string form. JSON never fails.
func JSON(v interface{}) string {
	if s, ok := v.(string); ok {
		idx := strings.IndexAny(s, "{[")
		if idx < 0 {
			return Reindent(s)
		}
		out, ok := canonical([]byte(s[idx:]))
		if !ok {
			return Reindent(s)
		}
		prefix := s[:idx]
		if strings.TrimSpace(prefix) == "" {
			return out
		}
		return prefix + "\n" + out
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Reindent(fmt.Sprint(v))
	}
	out, ok := canonical(data)
	if !ok {
		return Reindent(fmt.Sprint(v))
	}
	return out
}

// canonical parses a JSON document and re-serializes it with fixed
// indentation and key order. It reports false for malformed input,
// trailing garbage, and bare scalars.
func canonical(data []byte) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return "", false
	}
	if dec.More() {
		return "", false
	}
	switch tree.(type) {
	case map[string]interface{}, []interface{}:
	default:
		return "", false
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indentUnit)
	if err := enc.Encode(tree); err != nil {
		return "", false
	}
	return strings.TrimRight(buf.String(), "\n"), true
}
