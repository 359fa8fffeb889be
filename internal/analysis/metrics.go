package analysis

import (
	"fmt"
	"math"
	"strings"
)

const (
	densityMinWordLen = 5  // only words longer than 4 characters count
	densityTopN       = 10
	shortContentWords = 300
	longContentWords  = 2000
	maxGradeLevel     = 12
)

// readingLevels maps Flesch reading-ease thresholds to discrete labels,
// highest threshold first.
var readingLevels = []struct {
	min   float64
	label string
}{
	{90, "Very Easy"},
	{80, "Easy"},
	{70, "Fairly Easy"},
	{60, "Standard"},
	{50, "Fairly Difficult"},
	{30, "Difficult"},
}

// ReadingLevel maps a Flesch reading-ease score to its discrete label.
func ReadingLevel(score float64) string {
	for _, level := range readingLevels {
		if score >= level.min {
			return level.label
		}
	}
	return "Very Difficult"
}

// CalculateMetrics computes word count, keyword density and readability
// labeling for one content unit. Empty bodies yield a well-formed zero
// bundle, never a division failure.
func CalculateMetrics(body string, readability Readability) MetricsBundle {
	words := strings.Fields(body)
	bundle := MetricsBundle{
		ReadabilityScore: readability.FleschReadingEase,
		GradeLevel:       readability.FleschKincaidGrade,
		ReadingLevel:     ReadingLevel(readability.FleschReadingEase),
		WordCount:        len(words),
		KeywordDensity:   map[string]float64{},
	}

	if bundle.WordCount > 0 {
		candidates := make([]string, 0, len(words))
		for _, w := range words {
			if len(w) >= densityMinWordLen {
				candidates = append(candidates, strings.ToLower(w))
			}
		}
		total := float64(bundle.WordCount)
		for _, wc := range rankByFrequency(candidates) {
			if len(bundle.KeywordDensity) == densityTopN {
				break
			}
			bundle.KeywordDensity[wc.word] = round2(float64(wc.count) / total * 100)
		}
	}

	bundle.Recommendations = metricsRecommendations(bundle)
	return bundle
}

func metricsRecommendations(m MetricsBundle) []string {
	var recs []string
	if m.ReadabilityScore < 60 {
		recs = append(recs, "Simplify sentences to improve readability")
	}
	if m.WordCount < shortContentWords {
		recs = append(recs, fmt.Sprintf("Content is too short - aim for at least %d words", shortContentWords))
	}
	if m.WordCount > longContentWords {
		recs = append(recs, "Consider splitting long content into multiple pages")
	}
	if m.GradeLevel > maxGradeLevel {
		recs = append(recs, "Reading grade level is high - simplify for a broader audience")
	}
	return recs
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
