package play

import (
	tea "github.com/charmbracelet/bubbletea"

	"carquiz/internal/quiz"
	"carquiz/internal/session"
)

// applyKey routes a key press based on the current phase.
func applyKey(m Model, key string) (Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c", "esc":
		m.state.Phase = PhaseDone
		return m, tea.Quit
	}
	switch m.state.Phase {
	case PhaseAsking:
		switch key {
		case "up", "k":
			if m.state.Cursor > 0 {
				m.state.Cursor--
			}
		case "down", "j":
			if m.state.Cursor < len(m.state.Question.Choices)-1 {
				m.state.Cursor++
			}
		case "enter", " ":
			m = submitCurrent(m)
			if m.state.Phase == PhaseDone {
				return m, tea.Quit
			}
		}
	case PhaseFeedback:
		switch key {
		case "enter", "n", " ":
			return advanceRound(m)
		}
	}
	return m, nil
}

// applyQuestion installs a generated question or records the failure.
func applyQuestion(m Model, question quiz.Question, err error) Model {
	if err != nil {
		m.state.Err = err.Error()
		m.state.Phase = PhaseDone
		return m
	}
	m.state.Question = question
	m.state.Cursor = 0
	m.state.Phase = PhaseAsking
	return m
}

// submitCurrent grades the choice under the cursor.
func submitCurrent(m Model) Model {
	if len(m.state.Question.Choices) == 0 {
		return m
	}
	choice := m.state.Question.Choices[m.state.Cursor]
	outcome, err := m.session.SubmitAnswer(m.state.Question, choice.ID)
	if err != nil {
		m.state.Err = err.Error()
		m.state.Phase = PhaseDone
		return m
	}
	m.state.Outcome = outcome
	m.state.HasOutcome = true
	m.state.Score = m.session.Score
	m.state.Accuracy = m.session.Accuracy()
	m.state.History = append([]session.HistoryEntry(nil), m.session.History...)
	m.state.Phase = PhaseFeedback
	m.table.SetRows(historyRows(m.state.History))
	return m
}

// advanceRound moves to the next round or ends the game at the limit.
func advanceRound(m Model) (Model, tea.Cmd) {
	if m.state.RoundsTotal > 0 && m.state.Round >= m.state.RoundsTotal {
		m.state.Phase = PhaseDone
		return m, tea.Quit
	}
	m.state.Round++
	m.state.Phase = PhaseAsking
	m.state.Cursor = 0
	m.state.HasOutcome = false
	m.state.Question = quiz.Question{}
	return m, nextQuestion(m.session, m.records, m.numChoices)
}
