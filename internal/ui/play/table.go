package play

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"carquiz/internal/session"
)

// tableStyles returns history table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// historyColumns defines the recent-answer table layout.
func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Result", Width: 8},
		{Title: "Your answer", Width: 30},
		{Title: "Correct answer", Width: 30},
	}
}

// historyRows converts history entries into table rows, newest first so
// recent rounds stay visible when the table overflows.
func historyRows(entries []session.HistoryEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		result := "wrong"
		if entry.Correct {
			result = "correct"
		}
		rows = append(rows, table.Row{
			result,
			truncateLabel(entry.SelectedLabel),
			truncateLabel(entry.CorrectLabel),
		})
	}
	return rows
}
