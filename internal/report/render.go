package report

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"carquiz/internal/session"
)

// RenderReportHTML renders the report component into a string.
func RenderReportHTML(ctx context.Context, sessions []session.Results) (string, error) {
	var builder strings.Builder
	if err := ReportPage(sessions).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// ReportPage builds the full report page component.
func ReportPage(sessions []session.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>Car Quiz Report</title>\n<link rel=\"stylesheet\" href=\"/assets/style.css\">\n</head>\n<body>\n<h1>Car Quiz Report</h1>\n"); err != nil {
			return err
		}
		if len(sessions) == 0 {
			if _, err := io.WriteString(w, "<p>No sessions recorded yet.</p>\n"); err != nil {
				return err
			}
		} else {
			if err := sessionOverview(sessions).Render(ctx, w); err != nil {
				return err
			}
			for _, results := range sessions {
				if err := sessionSection(results).Render(ctx, w); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// sessionOverview renders the summary table across sessions.
func sessionOverview(sessions []session.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table class=\"overview\">\n<thead><tr><th>Session</th><th>Started</th><th>Rounds</th><th>Correct</th><th>Accuracy</th></tr></thead>\n<tbody>\n"); err != nil {
			return err
		}
		for _, results := range sessions {
			row := fmt.Sprintf(
				"<tr><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%s%%</td></tr>\n",
				templ.EscapeString(results.SessionID),
				templ.EscapeString(formatTimestamp(results.StartedAt)),
				results.Summary.RoundsTotal,
				results.Summary.CorrectTotal,
				formatAccuracy(results.Summary.Accuracy),
			)
			if _, err := io.WriteString(w, row); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}

// sessionSection renders one session with its answered rounds.
func sessionSection(results session.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		header := fmt.Sprintf(
			"<section>\n<h2>Session %s</h2>\n<p>%d of %d correct (%s%%), seed %d</p>\n",
			templ.EscapeString(results.SessionID),
			results.Summary.CorrectTotal,
			results.Summary.RoundsTotal,
			formatAccuracy(results.Summary.Accuracy),
			results.Seed,
		)
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}
		if len(results.Rounds) == 0 {
			if _, err := io.WriteString(w, "<p>No rounds answered.</p>\n</section>\n"); err != nil {
				return err
			}
			return nil
		}
		if _, err := io.WriteString(w, "<table class=\"rounds\">\n<thead><tr><th>#</th><th>Image</th><th>Correct answer</th><th>Your answer</th><th>Result</th></tr></thead>\n<tbody>\n"); err != nil {
			return err
		}
		for _, round := range results.Rounds {
			verdict := "miss"
			if round.Correct {
				verdict = "hit"
			}
			href := templ.URL("/thumbs/" + filepath.ToSlash(round.ImagePath))
			row := fmt.Sprintf(
				"<tr class=\"%s\"><td>%d</td><td><a href=\"%s\">%s</a></td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				verdict,
				round.Round,
				templ.EscapeString(string(href)),
				templ.EscapeString(round.ImagePath),
				templ.EscapeString(round.CorrectLabel),
				templ.EscapeString(round.SelectedLabel),
				verdict,
			)
			if _, err := io.WriteString(w, row); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n</section>\n")
		return err
	})
}
