// Package report renders session results as HTML and resolves stored
// sessions from the results directory.
package report

import (
	"context"

	"carquiz/internal/session"
)

// BuildReportHTML renders an HTML report for the given sessions.
func BuildReportHTML(sessions []session.Results) string {
	html, err := RenderReportHTML(context.Background(), sessions)
	if err != nil {
		return ""
	}
	return html
}
