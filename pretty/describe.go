package pretty

import (
	"fmt"

	"github.com/ezsoft-tech/loggy/core"
)

// Describable is implemented by values that can report their own type
// name and field set for model rendering. Implementing it lets a value
// control exactly what the model printer shows, instead of going
// through the JSON round trip.
type Describable interface {
	Describe() (typeName string, fields []core.Field)
}

// Plain stringifies a payload with no structure awareness. Strings
// pass through unchanged.
func Plain(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
