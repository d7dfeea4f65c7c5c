package play

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the session header line.
func renderHeader(state State, noColor bool) string {
	line := "Car Quiz | Session " + state.SessionID
	line += " | Round " + fmtInt(state.Round)
	if state.RoundsTotal > 0 {
		line += "/" + fmtInt(state.RoundsTotal)
	}
	line += " | Score " + fmtInt(state.Score)
	if state.Round > 1 || state.HasOutcome {
		line += " | Accuracy " + formatAccuracy(state.Accuracy)
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderQuestion renders the image line and the choice list.
func renderQuestion(state State, noColor bool) string {
	if len(state.Question.Choices) == 0 {
		return stylize("Loading question...", noColor, lipgloss.Color("242"))
	}
	lines := []string{
		"",
		"Which car is this?",
		stylize("Image: "+state.Question.ImageRecord.Path, noColor, lipgloss.Color("242")),
		"",
	}
	for i, choice := range state.Question.Choices {
		marker := "  "
		label := truncateLabel(choice.Label)
		if i == state.Cursor {
			marker = "> "
			label = stylize(label, noColor, lipgloss.Color("252"))
		}
		lines = append(lines, marker+label)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFeedback renders the grade for the last submitted answer.
func renderFeedback(state State, noColor bool) string {
	if !state.HasOutcome || state.Phase != PhaseFeedback {
		return ""
	}
	if state.Outcome.Correct {
		return "\n" + stylize("Correct! It is a "+state.Outcome.CorrectLabel+".", noColor, lipgloss.Color("42"))
	}
	return "\n" + stylize("Wrong. It is a "+state.Outcome.CorrectLabel+".", noColor, lipgloss.Color("220"))
}

// renderFooter renders the key hints for the current phase.
func renderFooter(state State, noColor bool) string {
	var hints string
	switch state.Phase {
	case PhaseAsking:
		hints = "up/down move | enter answer | q quit"
	case PhaseFeedback:
		hints = "n next | q quit"
	default:
		return ""
	}
	return "\n" + stylize(hints, noColor, lipgloss.Color("244"))
}

// renderError renders a fatal UI error.
func renderError(state State, noColor bool) string {
	return stylize("Error: "+state.Err, noColor, lipgloss.Color("196")) + "\n"
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
