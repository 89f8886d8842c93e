// Package sjr reads SCImago Journal Rank subject-area exports. The yearly
// files come in two physical layouts: a regular table with a header row, or
// a broken export where every logical row landed in the sheet as one
// semicolon-delimited string (sometimes split across several cells).
package sjr

import (
	"fmt"
	"strings"
)

// Entry is one journal row extracted from a subject-area export. Rank is
// kept as the raw cell text; not every year carries a rank column and some
// carry non-numeric values.
type Entry struct {
	Title      string
	Quartile   string
	Rank       string
	SourceFile string
}

// SchemaError reports that neither layout yielded both a title and a
// quartile column. Columns holds the header names that were actually found,
// so the operator can see what the file really contains.
type SchemaError struct {
	Path    string
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("title/quartile columns not found in %s (columns present: %s)",
		e.Path, strings.Join(e.Columns, ", "))
}
