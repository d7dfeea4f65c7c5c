package play

import (
	"carquiz/internal/quiz"
	"carquiz/internal/session"
)

// Phase tracks where the UI is within a round.
type Phase int

const (
	// PhaseAsking shows the question and waits for a choice.
	PhaseAsking Phase = iota
	// PhaseFeedback shows the grade for the submitted choice.
	PhaseFeedback
	// PhaseDone means the game is over and the program is quitting.
	PhaseDone
)

// State captures the play UI state for a quiz session.
type State struct {
	SessionID   string
	Round       int
	RoundsTotal int
	Score       int
	Accuracy    float64
	Phase       Phase
	Question    quiz.Question
	Cursor      int
	Outcome     session.Outcome
	HasOutcome  bool
	History     []session.HistoryEntry
	Err         string
}
