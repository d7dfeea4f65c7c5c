package play

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"carquiz/internal/catalog"
	"carquiz/internal/session"
)

// Run drives a full-screen quiz over the session until the user quits
// or the round limit is reached. Answers accumulate on the session.
func Run(sess *session.Session, records []catalog.Record, opts Options, stdout io.Writer) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	model := NewModel(sess, records, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.state.Err != "" {
		return errors.New(m.state.Err)
	}
	return nil
}
