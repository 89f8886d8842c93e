package naming

import (
	"testing"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "ampersand and leading the",
			title: "The Journal of Foo & Bar",
			want:  "journal of foo and bar",
		},
		{
			name:  "plain title lowercased",
			title: "Psychological Review",
			want:  "psychological review",
		},
		{
			name:  "trailing the after comma",
			title: "Lancet, The",
			want:  "lancet",
		},
		{
			name:  "curly apostrophe stripped without space",
			title: "Alzheimer’s & Dementia",
			want:  "alzheimers and dementia",
		},
		{
			name:  "straight apostrophe stripped without space",
			title: "Int'l Journal of Testing",
			want:  "intl journal of testing",
		},
		{
			name:  "punctuation becomes space",
			title: "IEEE/ACM Transactions on Networking",
			want:  "ieee acm transactions on networking",
		},
		{
			name:  "the mid-title removed on word boundary",
			title: "Journal of the American Medical Association",
			want:  "journal of american medical association",
		},
		{
			name:  "the as substring preserved",
			title: "Theoretical Computer Science",
			want:  "theoretical computer science",
		},
		{
			name:  "abbreviations not expanded",
			title: "J. Comp. Sci.",
			want:  "j comp sci",
		},
		{
			name:  "whitespace runs collapse",
			title: "  Applied   Economics \t Letters ",
			want:  "applied economics letters",
		},
		{
			name:  "unicode dash becomes space",
			title: "Nature – Genetics",
			want:  "nature genetics",
		},
		{
			name:  "empty input",
			title: "",
			want:  "",
		},
		{
			name:  "punctuation only",
			title: "***",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTitle(tt.title)
			if got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

// Normalization is used to build keys and to query them, so it must be a
// fixed point: normalizing twice can never change the result.
func TestNormalizeTitleIdempotent(t *testing.T) {
	titles := []string{
		"The Journal of Foo & Bar",
		"ACM Computing Surveys",
		"Alzheimer’s & Dementia: The Journal of the Alzheimer’s Association",
		"R&D Management",
		"   ",
	}

	for _, title := range titles {
		once := NormalizeTitle(title)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: first %q, second %q", title, once, twice)
		}
	}
}

func TestCleanQuartile(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"Q2" `, "Q2"},
		{" Q1", "Q1"},
		{`""Q4""`, "Q4"},
		{"Q3", "Q3"},
		{"", ""},
		{`"-"`, "-"},
	}

	for _, tt := range tests {
		if got := CleanQuartile(tt.raw); got != tt.want {
			t.Errorf("CleanQuartile(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestQuartileValidation(t *testing.T) {
	for i, q := range Quartiles {
		if !IsValidQuartile(q) {
			t.Errorf("IsValidQuartile(%q) = false, want true", q)
		}
		if got := QuartileOrdinal(q); got != i+1 {
			t.Errorf("QuartileOrdinal(%q) = %d, want %d", q, got, i+1)
		}
	}

	for _, q := range []string{"", "Q5", "q1", "n/a", "Q", "NOT FOUND"} {
		if IsValidQuartile(q) {
			t.Errorf("IsValidQuartile(%q) = true, want false", q)
		}
		if got := QuartileOrdinal(q); got != 0 {
			t.Errorf("QuartileOrdinal(%q) = %d, want 0", q, got)
		}
	}
}
