package cli

import (
	"bufio"
	"fmt"
	"io"

	"carquiz/internal/catalog"
	"carquiz/internal/session"
)

// playPlain runs a line-oriented quiz loop for non-TTY output. It keeps
// asking until the round limit is reached or the player quits.
func playPlain(sess *session.Session, records []catalog.Record, numChoices, rounds int, reader *bufio.Reader, stdout io.Writer) error {
	round := 1
	for rounds == 0 || round <= rounds {
		question, err := sess.NextQuestion(records, numChoices)
		if err != nil {
			return err
		}

		fmt.Fprintln(stdout)
		if rounds > 0 {
			fmt.Fprintf(stdout, "Round %d/%d\n", round, rounds)
		} else {
			fmt.Fprintf(stdout, "Round %d\n", round)
		}
		fmt.Fprintf(stdout, "Image: %s\n", question.ImageRecord.Path)
		fmt.Fprintln(stdout, "Which car is this?")
		for i, choice := range question.Choices {
			fmt.Fprintf(stdout, "  %d) %s\n", i+1, choice.Label)
		}

		ans, err := promptChoice(reader, stdout, len(question.Choices))
		if err != nil {
			return err
		}
		if ans.quit {
			return nil
		}

		outcome, err := sess.SubmitAnswer(question, question.Choices[ans.choice-1].ID)
		if err != nil {
			return err
		}
		if outcome.Correct {
			fmt.Fprintf(stdout, "Correct! It is a %s.\n", outcome.CorrectLabel)
		} else {
			fmt.Fprintf(stdout, "Wrong. It is a %s.\n", outcome.CorrectLabel)
		}
		fmt.Fprintf(stdout, "Score: %d/%d\n", sess.Score, sess.RoundsPlayed)
		round++
	}
	return nil
}
