package interp

import (
	"fmt"
	"strings"
)

// Apply substitutes every {name} occurrence in template with the stringified
// value of params["name"]. Placeholders without a matching param are left
// literal; params without a matching placeholder are ignored.
func Apply(template string, params map[string]any) string {
	if len(params) == 0 {
		return template
	}
	out := template
	for name, value := range params {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprint(value))
	}
	return out
}
