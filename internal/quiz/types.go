// Package quiz generates multiple-choice questions from the car catalog.
package quiz

import (
	"fmt"

	"carquiz/internal/catalog"
)

// Choice is one answer option. The correct choice references the record
// whose image is shown; distractors reference a representative record of
// their group.
type Choice struct {
	ID     string
	Label  string
	Record catalog.Record
}

// Question is a generated quiz round: one image, a shuffled set of
// labeled choices, and the id of the correct choice.
type Question struct {
	ID              string
	ImageRecord     catalog.Record
	CorrectChoiceID string
	Choices         []Choice
}

// groupKey identifies a unique (make, model, year) combination.
type groupKey struct {
	Make  string
	Model string
	Year  int
}

func (k groupKey) label() string {
	return fmt.Sprintf("%s %s %d", k.Make, k.Model, k.Year)
}

// grouping holds records bucketed by groupKey. Keys keep first-encounter
// order so seeded runs stay reproducible across processes.
type grouping struct {
	keys   []groupKey
	groups map[groupKey][]catalog.Record
}

func groupRecords(records []catalog.Record) grouping {
	g := grouping{groups: make(map[groupKey][]catalog.Record)}
	for _, record := range records {
		key := groupKey{Make: record.Make, Model: record.Model, Year: record.Year}
		if _, seen := g.groups[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.groups[key] = append(g.groups[key], record)
	}
	return g
}
