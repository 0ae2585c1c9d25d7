package analysis

import (
	"strconv"
	"strings"
)

// intOrDefault parses a model-supplied scalar that should be an integer but
// may arrive as anything. Any parse failure yields the default.
func intOrDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}

	return v
}

func floatOrDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}

	return v
}
