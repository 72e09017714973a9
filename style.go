package vectoricon

import (
	"strconv"
	"strings"
)

// splitStyle breaks a style attribute value into its property map.
// Malformed declarations are skipped.
func splitStyle(style string) map[string]string {
	properties := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" || val == "" {
			continue
		}
		properties[key] = val
	}
	return properties
}

// parseFloatProperty parses a numeric style property, tolerating a
// trailing px unit.
func parseFloatProperty(val string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(val), "px"), 64)
}
