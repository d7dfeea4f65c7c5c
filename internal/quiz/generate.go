package quiz

import (
	"math/rand/v2"
	"sort"

	"github.com/google/uuid"

	"carquiz/internal/catalog"
)

// Generate builds one question from the records. rng is the session's
// seeded generator; given the same records and seed the same question
// sequence is produced. Errors are typed and never substituted with a
// degraded question.
func Generate(records []catalog.Record, numChoices int, rng *rand.Rand) (Question, error) {
	if numChoices < 2 {
		return Question{}, &InvalidChoiceCountError{NumChoices: numChoices}
	}

	g := groupRecords(records)
	if len(g.keys) < numChoices {
		return Question{}, &InsufficientCatalogError{Groups: len(g.keys), NumChoices: numChoices}
	}

	targetKey := g.keys[rng.IntN(len(g.keys))]
	targetRecords := g.groups[targetKey]
	imageRecord := targetRecords[rng.IntN(len(targetRecords))]

	distractorKeys := pickDistractorKeys(g, targetKey, numChoices-1, rng)

	choices := make([]Choice, 0, numChoices)
	correctChoiceID := uuid.NewString()
	choices = append(choices, Choice{
		ID:     correctChoiceID,
		Label:  targetKey.label(),
		Record: imageRecord,
	})
	for _, key := range distractorKeys {
		choices = append(choices, Choice{
			ID:     uuid.NewString(),
			Label:  key.label(),
			Record: g.groups[key][0],
		})
	}

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return Question{
		ID:              uuid.NewString(),
		ImageRecord:     imageRecord,
		CorrectChoiceID: correctChoiceID,
		Choices:         choices,
	}, nil
}

// pickDistractorKeys selects numNeeded groups under the tier policy:
// same-make groups first, then different makes by ascending year
// distance with shuffle order breaking ties, then any remaining group.
func pickDistractorKeys(g grouping, targetKey groupKey, numNeeded int, rng *rand.Rand) []groupKey {
	sameMake := make([]groupKey, 0, len(g.keys))
	other := make([]groupKey, 0, len(g.keys))
	for _, key := range g.keys {
		switch {
		case key == targetKey:
		case key.Make == targetKey.Make:
			sameMake = append(sameMake, key)
		default:
			other = append(other, key)
		}
	}

	rng.Shuffle(len(sameMake), func(i, j int) { sameMake[i], sameMake[j] = sameMake[j], sameMake[i] })
	rng.Shuffle(len(other), func(i, j int) { other[i], other[j] = other[j], other[i] })

	selected := make([]groupKey, 0, numNeeded)
	chosen := make(map[groupKey]bool)
	take := func(key groupKey) {
		selected = append(selected, key)
		chosen[key] = true
	}

	for _, key := range sameMake {
		take(key)
		if len(selected) >= numNeeded {
			break
		}
	}

	if len(selected) < numNeeded {
		// Closest years first; the pre-sort shuffle order decides ties.
		sort.SliceStable(other, func(i, j int) bool {
			return absInt(other[i].Year-targetKey.Year) < absInt(other[j].Year-targetKey.Year)
		})
		for _, key := range other {
			if !chosen[key] {
				take(key)
			}
			if len(selected) >= numNeeded {
				break
			}
		}
	}

	if len(selected) < numNeeded {
		pool := make([]groupKey, 0, len(g.keys))
		for _, key := range g.keys {
			if key != targetKey && !chosen[key] {
				pool = append(pool, key)
			}
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for _, key := range pool {
			take(key)
			if len(selected) >= numNeeded {
				break
			}
		}
	}

	if len(selected) > numNeeded {
		selected = selected[:numNeeded]
	}
	return selected
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
