package report

import (
	"fmt"
	"time"
)

// formatAccuracy returns a percentage string for report output.
func formatAccuracy(rate float64) string {
	return fmt.Sprintf("%.2f", rate*100)
}

// formatTimestamp renders a time for report output.
func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("2006-01-02 15:04:05 MST")
}
