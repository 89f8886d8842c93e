package sjr

import "strings"

// Column name candidates, tried in order against a case-folded view of the
// header row. SJR renamed the quartile column over the years.
var (
	titleCandidates    = []string{"title"}
	quartileCandidates = []string{"sjr best quartile", "best quartile", "quartile"}
	rankCandidates     = []string{"rank", "sjr_rank"}
)

// columnSet resolves candidate names against a header row, case-insensitively.
type columnSet struct {
	byName map[string]int
	header []string
}

func newColumnSet(header []string) *columnSet {
	cs := &columnSet{
		byName: make(map[string]int, len(header)),
		header: header,
	}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		// First occurrence wins on duplicate headers.
		if _, exists := cs.byName[key]; !exists {
			cs.byName[key] = i
		}
	}
	return cs
}

// find returns the index of the first candidate present in the header,
// or -1 when none match.
func (cs *columnSet) find(candidates []string) int {
	for _, cand := range candidates {
		if idx, ok := cs.byName[cand]; ok {
			return idx
		}
	}
	return -1
}

// names returns the header as seen in the file, for schema error reporting.
func (cs *columnSet) names() []string {
	out := make([]string, 0, len(cs.header))
	for _, name := range cs.header {
		if strings.TrimSpace(name) != "" {
			out = append(out, name)
		}
	}
	return out
}
