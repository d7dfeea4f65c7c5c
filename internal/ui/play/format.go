package play

import (
	"strconv"
	"strings"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatAccuracy renders an accuracy fraction as a percentage.
func formatAccuracy(accuracy float64) string {
	return strconv.FormatFloat(accuracy*100, 'f', 0, 64) + "%"
}

// truncateLabel collapses whitespace and truncates long labels.
func truncateLabel(label string) string {
	normalized := strings.Join(strings.Fields(label), " ")
	const limit = 60
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}
