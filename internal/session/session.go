// Package session owns the state of one quiz game: score, history, and
// the seeded random source behind question generation.
package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"carquiz/internal/catalog"
	"carquiz/internal/quiz"
)

// DefaultHistoryLimit bounds the recent-answer buffer.
const DefaultHistoryLimit = 25

// HistoryEntry records one answered round for display.
type HistoryEntry struct {
	QuestionID    string
	SelectedLabel string
	CorrectLabel  string
	Correct       bool
}

// Outcome reports the result of a submitted answer.
type Outcome struct {
	Correct       bool
	SelectedLabel string
	CorrectLabel  string
}

// Session is the caller-owned game context. One session owns one random
// generator; concurrent use requires external synchronization.
type Session struct {
	ID           string
	Seed         uint64
	StartedAt    time.Time
	Score        int
	RoundsPlayed int
	History      []HistoryEntry

	historyLimit int
	rng          *rand.Rand
	rounds       []RoundResult
}

// New creates a session seeded with seed. historyLimit <= 0 uses the
// default.
func New(seed uint64, historyLimit int) (*Session, error) {
	id, err := NewSessionID()
	if err != nil {
		return nil, err
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Session{
		ID:           id,
		Seed:         seed,
		StartedAt:    time.Now().UTC(),
		historyLimit: historyLimit,
		rng:          rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

// NextQuestion generates the next question using the session generator.
func (s *Session) NextQuestion(records []catalog.Record, numChoices int) (quiz.Question, error) {
	return quiz.Generate(records, numChoices, s.rng)
}

// SubmitAnswer grades a choice, updates score and history, and returns
// the outcome. The choice id must belong to the question.
func (s *Session) SubmitAnswer(question quiz.Question, choiceID string) (Outcome, error) {
	correctChoice, ok := quiz.CorrectChoice(question)
	if !ok {
		return Outcome{}, fmt.Errorf("correct choice not found on the question")
	}
	var selected *quiz.Choice
	for i := range question.Choices {
		if question.Choices[i].ID == choiceID {
			selected = &question.Choices[i]
			break
		}
	}
	if selected == nil {
		return Outcome{}, fmt.Errorf("choice %q is not part of question %s", choiceID, question.ID)
	}

	correct := quiz.IsCorrect(question, choiceID)
	s.RoundsPlayed++
	if correct {
		s.Score++
	}

	s.History = append(s.History, HistoryEntry{
		QuestionID:    question.ID,
		SelectedLabel: selected.Label,
		CorrectLabel:  correctChoice.Label,
		Correct:       correct,
	})
	if overflow := len(s.History) - s.historyLimit; overflow > 0 {
		s.History = append([]HistoryEntry(nil), s.History[overflow:]...)
	}

	labels := make([]string, 0, len(question.Choices))
	for _, choice := range question.Choices {
		labels = append(labels, choice.Label)
	}
	s.rounds = append(s.rounds, RoundResult{
		Round:         s.RoundsPlayed,
		QuestionID:    question.ID,
		ImagePath:     question.ImageRecord.Path,
		Make:          question.ImageRecord.Make,
		Model:         question.ImageRecord.Model,
		Year:          question.ImageRecord.Year,
		Choices:       labels,
		SelectedLabel: selected.Label,
		CorrectLabel:  correctChoice.Label,
		Correct:       correct,
		AnsweredAt:    time.Now().UTC(),
	})

	return Outcome{
		Correct:       correct,
		SelectedLabel: selected.Label,
		CorrectLabel:  correctChoice.Label,
	}, nil
}

// Accuracy returns the fraction of correct answers, 0 before any round.
func (s *Session) Accuracy() float64 {
	if s.RoundsPlayed == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.RoundsPlayed)
}

// Results assembles the persistable record of the session.
func (s *Session) Results(numChoices int, finishedAt time.Time) Results {
	return Results{
		SessionID:  s.ID,
		Seed:       s.Seed,
		NumChoices: numChoices,
		StartedAt:  s.StartedAt,
		FinishedAt: finishedAt.UTC(),
		Rounds:     append([]RoundResult(nil), s.rounds...),
		Summary: Summary{
			RoundsTotal:  s.RoundsPlayed,
			CorrectTotal: s.Score,
			Accuracy:     s.Accuracy(),
		},
	}
}
