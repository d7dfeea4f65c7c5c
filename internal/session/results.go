package session

import "time"

// Results is the on-disk record of a finished session, stored as
// results.json inside the session output directory.
type Results struct {
	SessionID  string        `json:"session_id"`
	Seed       uint64        `json:"seed"`
	NumChoices int           `json:"num_choices"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Rounds     []RoundResult `json:"rounds"`
	Summary    Summary       `json:"summary"`
}

// RoundResult captures one answered question.
type RoundResult struct {
	Round         int       `json:"round"`
	QuestionID    string    `json:"question_id"`
	ImagePath     string    `json:"image_path"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Choices       []string  `json:"choices"`
	SelectedLabel string    `json:"selected_label"`
	CorrectLabel  string    `json:"correct_label"`
	Correct       bool      `json:"correct"`
	AnsweredAt    time.Time `json:"answered_at"`
}

// Summary aggregates the session outcome.
type Summary struct {
	RoundsTotal  int     `json:"rounds_total"`
	CorrectTotal int     `json:"correct_total"`
	Accuracy     float64 `json:"accuracy"`
}
