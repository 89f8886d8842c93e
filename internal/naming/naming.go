// Package naming canonicalizes journal titles and quartile labels so the
// same journal is recognized across SJR subject-area exports that disagree
// on casing, punctuation or "The" prefixes.
package naming

import (
	"regexp"
	"strings"
)

var (
	theWordRegex    = regexp.MustCompile(`\bthe\b`)
	apostropheRegex = regexp.MustCompile("[’'`]")
	nonAlnumRegex   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizeTitle converts a journal title to the canonical form used as a
// dedup and lookup key:
//
//	"The Journal of Foo & Bar" -> "journal of foo and bar"
//	"Lancet, The"              -> "lancet"
//
// The exact step order matters: "&" expands before punctuation is stripped,
// and "the" is removed on word boundaries before spacing is collapsed.
// Matching is exact on the normalized string; abbreviations and word-order
// differences are deliberately not resolved.
func NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, "&", " and ")
	s = theWordRegex.ReplaceAllString(s, " ")
	s = apostropheRegex.ReplaceAllString(s, "")
	s = nonAlnumRegex.ReplaceAllString(s, " ")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
