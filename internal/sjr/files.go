package sjr

import (
	"fmt"
	"os"
	"path/filepath"
)

// SJR download conventions. The double space after the year is what the
// portal's bulk export actually produces.
const (
	DefaultSourcePattern  = "scimagojr %d  Subject Area - %s.xlsx"
	DefaultRankingPattern = "SJR%d_QRank.xlsx"
)

// SourceFileName returns the expected file name for one (year, subject area)
// export under the given pattern.
func SourceFileName(pattern string, year int, area string) string {
	return fmt.Sprintf(pattern, year, area)
}

// RankingFileName returns the consolidated table file name for a year.
func RankingFileName(pattern string, year int) string {
	return fmt.Sprintf(pattern, year)
}

// CheckExists verifies that a required input file is present, returning an
// error naming the offending path when it is not.
func CheckExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("missing file: %s", path)
	} else if err != nil {
		return fmt.Errorf("unable to stat %s: %w", path, err)
	}
	return nil
}

// SourcePaths returns the full paths of every subject-area export for a year.
func SourcePaths(dir, pattern string, year int, areas []string) []string {
	paths := make([]string, 0, len(areas))
	for _, area := range areas {
		paths = append(paths, filepath.Join(dir, SourceFileName(pattern, year, area)))
	}
	return paths
}
