package play

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carquiz/internal/catalog"
	"carquiz/internal/quiz"
	"carquiz/internal/session"
)

// Model renders an interactive quiz round using Bubble Tea.
type Model struct {
	state      State
	table      table.Model
	session    *session.Session
	records    []catalog.Record
	numChoices int
	noColor    bool
}

// Options configures the play UI model.
type Options struct {
	NoColor    bool
	NumChoices int
	Rounds     int
}

// NewModel constructs a play UI model over a session and catalog.
func NewModel(sess *session.Session, records []catalog.Record, opts Options) Model {
	numChoices := opts.NumChoices
	if numChoices < 2 {
		numChoices = 2
	}
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		state: State{
			SessionID:   sess.ID,
			Round:       1,
			RoundsTotal: opts.Rounds,
		},
		table:      t,
		session:    sess,
		records:    records,
		numChoices: numChoices,
		noColor:    opts.NoColor,
	}
}

// Init requests the first question.
func (m Model) Init() tea.Cmd {
	return nextQuestion(m.session, m.records, m.numChoices)
}

// Update consumes key presses and generated questions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-10, 1))
		return m, nil
	case QuestionMsg:
		m = applyQuestion(m, typed.Question, typed.Err)
		if m.state.Phase == PhaseDone {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		return applyKey(m, typed.String())
	}
	return m, nil
}

// View renders the play UI.
func (m Model) View() string {
	if m.state.Err != "" {
		return renderError(m.state, m.noColor)
	}
	header := renderHeader(m.state, m.noColor)
	question := renderQuestion(m.state, m.noColor)
	feedback := renderFeedback(m.state, m.noColor)
	history := ""
	if len(m.state.History) > 0 {
		history = m.table.View()
	}
	footer := renderFooter(m.state, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, question, feedback, history, footer)
}

// State exposes the current UI state.
func (m Model) State() State {
	return m.state
}

// QuestionMsg delivers a generated question or a generation failure.
type QuestionMsg struct {
	Question quiz.Question
	Err      error
}

// nextQuestion generates the next question off the update loop.
func nextQuestion(sess *session.Session, records []catalog.Record, numChoices int) tea.Cmd {
	return func() tea.Msg {
		question, err := sess.NextQuestion(records, numChoices)
		return QuestionMsg{Question: question, Err: err}
	}
}
