package leadimport

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize prepares a value for duplicate comparison: case-fold, trim,
// and collapse internal whitespace runs to a single space. Stored values
// are never mutated; normalization exists only for comparisons.
// A Caser is not safe for concurrent use, so one is built per call.
func Normalize(s string) string {
	s = cases.Fold().String(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
