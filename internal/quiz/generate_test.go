package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"carquiz/internal/catalog"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func sampleRecords() []catalog.Record {
	return []catalog.Record{
		{Path: "toyota_corolla_2010_01.jpg", Make: "Toyota", Model: "Corolla", Year: 2010},
		{Path: "toyota_corolla_2010_02.jpg", Make: "Toyota", Model: "Corolla", Year: 2010},
		{Path: "toyota_camry_2012_01.jpg", Make: "Toyota", Model: "Camry", Year: 2012},
		{Path: "honda_civic_2011_01.jpg", Make: "Honda", Model: "Civic", Year: 2011},
		{Path: "ford_mustang_gt_2018_01.jpg", Make: "Ford", Model: "Mustang Gt", Year: 2018},
		{Path: "bmw_m3_1995_01.jpg", Make: "BMW", Model: "M3", Year: 1995},
	}
}

// TestGenerateShape verifies choice count, single correct flag, and
// distinct labels.
func TestGenerateShape(t *testing.T) {
	question, err := Generate(sampleRecords(), 4, newRand(7))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(question.Choices) != 4 {
		t.Fatalf("expected 4 choices, got %d", len(question.Choices))
	}

	correct := 0
	labels := map[string]bool{}
	ids := map[string]bool{}
	for _, choice := range question.Choices {
		if choice.ID == question.CorrectChoiceID {
			correct++
		}
		if labels[choice.Label] {
			t.Fatalf("duplicate label %q", choice.Label)
		}
		labels[choice.Label] = true
		if ids[choice.ID] {
			t.Fatalf("duplicate choice id %q", choice.ID)
		}
		ids[choice.ID] = true
	}
	if correct != 1 {
		t.Fatalf("expected exactly one correct choice, got %d", correct)
	}

	choice, ok := CorrectChoice(question)
	if !ok {
		t.Fatalf("correct choice missing from question")
	}
	if choice.Record != question.ImageRecord {
		t.Fatalf("correct choice must reference the displayed record")
	}
	if choice.Label != question.ImageRecord.Label() {
		t.Fatalf("correct label %q does not match image record %q", choice.Label, question.ImageRecord.Label())
	}
}

// TestGenerateInvalidChoiceCount verifies the typed failure for fewer
// than two choices.
func TestGenerateInvalidChoiceCount(t *testing.T) {
	_, err := Generate(sampleRecords(), 1, newRand(1))
	if !errors.Is(err, ErrInvalidChoiceCount) {
		t.Fatalf("expected ErrInvalidChoiceCount, got %v", err)
	}
	var typed *InvalidChoiceCountError
	if !errors.As(err, &typed) || typed.NumChoices != 1 {
		t.Fatalf("expected InvalidChoiceCountError with count 1, got %v", err)
	}
}

// TestGenerateInsufficientCatalog verifies the typed failure when
// unique groups are fewer than the requested choices.
func TestGenerateInsufficientCatalog(t *testing.T) {
	records := []catalog.Record{
		{Path: "a.jpg", Make: "Toyota", Model: "Corolla", Year: 2010},
		{Path: "b.jpg", Make: "Honda", Model: "Civic", Year: 2011},
		{Path: "c.jpg", Make: "Ford", Model: "Focus", Year: 2012},
	}
	_, err := Generate(records, 4, newRand(1))
	if !errors.Is(err, ErrInsufficientCatalog) {
		t.Fatalf("expected ErrInsufficientCatalog, got %v", err)
	}
	var typed *InsufficientCatalogError
	if !errors.As(err, &typed) {
		t.Fatalf("expected InsufficientCatalogError, got %v", err)
	}
	if typed.Groups != 3 || typed.NumChoices != 4 {
		t.Fatalf("unexpected counts: %+v", typed)
	}
}

// TestGenerateDeterministic verifies identical seeds produce identical
// question content.
func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(sampleRecords(), 4, newRand(42))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := Generate(sampleRecords(), 4, newRand(42))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first.ImageRecord != second.ImageRecord {
		t.Fatalf("image records differ: %v vs %v", first.ImageRecord, second.ImageRecord)
	}
	for i := range first.Choices {
		if first.Choices[i].Label != second.Choices[i].Label {
			t.Fatalf("choice %d labels differ: %q vs %q", i, first.Choices[i].Label, second.Choices[i].Label)
		}
	}
}

// TestPickDistractorsSameMakeFirst verifies tier-a exhaustion: with
// enough same-make groups no other make ever appears.
func TestPickDistractorsSameMakeFirst(t *testing.T) {
	records := []catalog.Record{
		{Path: "t1.jpg", Make: "Toyota", Model: "Corolla", Year: 2010},
		{Path: "t2.jpg", Make: "Toyota", Model: "Camry", Year: 2012},
		{Path: "t3.jpg", Make: "Toyota", Model: "Supra", Year: 1998},
		{Path: "t4.jpg", Make: "Toyota", Model: "Yaris", Year: 2015},
		{Path: "h1.jpg", Make: "Honda", Model: "Civic", Year: 2011},
		{Path: "f1.jpg", Make: "Ford", Model: "Focus", Year: 2012},
	}
	g := groupRecords(records)
	target := groupKey{Make: "Toyota", Model: "Corolla", Year: 2010}
	keys := pickDistractorKeys(g, target, 3, newRand(3))
	if len(keys) != 3 {
		t.Fatalf("expected 3 distractors, got %d", len(keys))
	}
	for _, key := range keys {
		if key.Make != "Toyota" {
			t.Fatalf("expected only Toyota distractors, got %+v", key)
		}
		if key == target {
			t.Fatalf("target selected as distractor")
		}
	}
}

// TestPickDistractorsYearProximity verifies tier-b prefers the closest
// years once same-make groups run out.
func TestPickDistractorsYearProximity(t *testing.T) {
	records := []catalog.Record{
		{Path: "t1.jpg", Make: "Toyota", Model: "Corolla", Year: 2010},
		{Path: "t2.jpg", Make: "Toyota", Model: "Camry", Year: 2012},
		{Path: "h1.jpg", Make: "Honda", Model: "Civic", Year: 2011},
		{Path: "b1.jpg", Make: "BMW", Model: "M3", Year: 2013},
		{Path: "f1.jpg", Make: "Ferrari", Model: "F355", Year: 1995},
	}
	g := groupRecords(records)
	target := groupKey{Make: "Toyota", Model: "Corolla", Year: 2010}
	keys := pickDistractorKeys(g, target, 3, newRand(11))
	if len(keys) != 3 {
		t.Fatalf("expected 3 distractors, got %d", len(keys))
	}
	if keys[0].Make != "Toyota" {
		t.Fatalf("expected same-make distractor first, got %+v", keys[0])
	}
	for _, key := range keys[1:] {
		if key.Make == "Ferrari" {
			t.Fatalf("expected the distant-year Ferrari to be excluded, got %v", keys)
		}
	}
}

// TestPickDistractorsNeverRepeats verifies uniqueness across tiers.
func TestPickDistractorsNeverRepeats(t *testing.T) {
	g := groupRecords(sampleRecords())
	target := g.keys[0]
	keys := pickDistractorKeys(g, target, len(g.keys)-1, newRand(5))
	seen := map[groupKey]bool{target: true}
	for _, key := range keys {
		if seen[key] {
			t.Fatalf("group %+v selected twice", key)
		}
		seen[key] = true
	}
}

// TestIsCorrect verifies scoring is a pure id comparison.
func TestIsCorrect(t *testing.T) {
	question := Question{CorrectChoiceID: "abc"}
	if !IsCorrect(question, "abc") {
		t.Fatalf("expected correct answer")
	}
	if IsCorrect(question, "xyz") {
		t.Fatalf("expected incorrect answer")
	}
	if IsCorrect(question, "") {
		t.Fatalf("expected empty selection to be incorrect")
	}
}
