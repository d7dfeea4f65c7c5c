package quiz

// IsCorrect reports whether the chosen choice id is the correct one.
func IsCorrect(question Question, choiceID string) bool {
	return question.CorrectChoiceID == choiceID
}

// CorrectChoice returns the choice flagged as correct.
func CorrectChoice(question Question) (Choice, bool) {
	for _, choice := range question.Choices {
		if choice.ID == question.CorrectChoiceID {
			return choice, true
		}
	}
	return Choice{}, false
}
