package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

const (
	gapVocabularyTopN = 20
	gapMissingListCap = 10
)

var vocabularyWord = regexp.MustCompile(`\b[a-z]{3,}\b`)

// GapAnalyzer compares a body's actual vocabulary against an expected
// keyword set. When the caller supplies no competitor keywords, the expected
// set comes from the generative provider; its failure degrades to an empty
// set, never an error.
type GapAnalyzer struct {
	suggester KeywordSuggester
}

// NewGapAnalyzer creates a gap analyzer. suggester may be nil, in which case
// a missing competitor list yields an empty expected set.
func NewGapAnalyzer(suggester KeywordSuggester) *GapAnalyzer {
	return &GapAnalyzer{suggester: suggester}
}

// Analyze computes the keyword-gap report for body. competitorKeywords is
// the caller-supplied expected set; when empty, the generative provider is
// asked for comprehensive-topic keywords instead.
func (g *GapAnalyzer) Analyze(ctx context.Context, body string, primaryKeywords, competitorKeywords []string) KeywordGap {
	expected := competitorKeywords
	if len(expected) == 0 && g.suggester != nil {
		suggested, err := g.suggester.ExpectedKeywords(ctx, body, primaryKeywords)
		if err != nil {
			slog.Warn("expected-keyword generation unavailable, gap analysis degrades to empty set", "error", err)
		} else {
			expected = suggested
		}
	}

	bodyLower := strings.ToLower(body)
	var missing, covered []string
	for _, kw := range expected {
		if strings.Contains(bodyLower, strings.ToLower(kw)) {
			covered = append(covered, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	coverage := 0.0
	if len(expected) > 0 {
		coverage = round2(float64(len(covered)) / float64(len(expected)) * 100)
	}

	missingList := missing
	if len(missingList) > gapMissingListCap {
		missingList = missingList[:gapMissingListCap]
	}

	return KeywordGap{
		CoverageScore:   coverage,
		TotalExpected:   len(expected),
		Covered:         len(covered),
		Missing:         len(missing),
		MissingKeywords: missingList,
		CoveredKeywords: covered,
		Recommendations: gapRecommendations(missing),
	}
}

// ContentVocabulary extracts the body's own top-20 most frequent alphabetic
// tokens of three or more letters.
func ContentVocabulary(body string) []string {
	words := vocabularyWord.FindAllString(strings.ToLower(body), -1)
	return topFrequent(words, gapVocabularyTopN)
}

func gapRecommendations(missing []string) []string {
	var recs []string
	switch {
	case len(missing) > 10:
		recs = append(recs, "Content lacks comprehensive topic coverage - add sections for missing keywords")
	case len(missing) > 5:
		recs = append(recs, "Expand content to cover more related topics and keywords")
	}
	if len(missing) > 0 {
		top := missing
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, fmt.Sprintf("Priority keywords to add: %s", strings.Join(top, ", ")))
	}
	return recs
}
