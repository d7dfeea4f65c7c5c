package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidChoiceCount matches any request for fewer than two choices.
var ErrInvalidChoiceCount = errors.New("invalid choice count")

// ErrInsufficientCatalog matches any catalog too small for the
// requested choice count.
var ErrInsufficientCatalog = errors.New("insufficient catalog")

// InvalidChoiceCountError reports a generate call with too few choices.
type InvalidChoiceCountError struct {
	NumChoices int
}

func (e *InvalidChoiceCountError) Error() string {
	return fmt.Sprintf("need at least 2 choices for a quiz question, got %d", e.NumChoices)
}

func (e *InvalidChoiceCountError) Unwrap() error {
	return ErrInvalidChoiceCount
}

// InsufficientCatalogError reports too few unique (make, model, year)
// groups for the requested choice count.
type InsufficientCatalogError struct {
	Groups     int
	NumChoices int
}

func (e *InsufficientCatalogError) Error() string {
	return fmt.Sprintf("not enough unique car combinations to generate %d choices (only %d available)",
		e.NumChoices, e.Groups)
}

func (e *InsufficientCatalogError) Unwrap() error {
	return ErrInsufficientCatalog
}
