// Package catalog builds the car image index from filename metadata.
package catalog

import "fmt"

// Record is one parsed image entry. Paths are stored relative to the
// data directory and uniquely identify the file. Records are never
// mutated after construction.
type Record struct {
	Path  string `json:"path"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// Label formats the record for display as "Make Model Year".
func (r Record) Label() string {
	return fmt.Sprintf("%s %s %d", r.Make, r.Model, r.Year)
}
