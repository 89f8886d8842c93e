package naming

import "strings"

// quartileOrder maps quartile labels to their sort ordinal, Q1 best.
var quartileOrder = map[string]int{
	"Q1": 1,
	"Q2": 2,
	"Q3": 3,
	"Q4": 4,
}

// Quartiles lists the valid labels in rank order. The matcher appends the
// NotFound sentinel when reporting counts.
var Quartiles = []string{"Q1", "Q2", "Q3", "Q4"}

// NotFound is the sentinel written when a journal has no ranking entry in
// the year being queried.
const NotFound = "NOT FOUND"

// CleanQuartile strips embedded quote characters and surrounding whitespace
// from a raw quartile cell. Semicolon-export files wrap values in double
// quotes that survive reconstruction.
func CleanQuartile(q string) string {
	return strings.TrimSpace(strings.ReplaceAll(q, `"`, ""))
}

// IsValidQuartile reports whether q is exactly one of Q1-Q4.
func IsValidQuartile(q string) bool {
	_, ok := quartileOrder[q]
	return ok
}

// QuartileOrdinal returns the numeric rank of a quartile label (Q1=1 ... Q4=4),
// or 0 for anything that is not a valid label.
func QuartileOrdinal(q string) int {
	return quartileOrder[q]
}
