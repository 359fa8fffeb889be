package analysis

import "strings"

// Rule-hit phrase sets for the E-E-A-T pillars. Matching is by lowercase
// substring over the body.
var (
	experiencePhrases = []string{"our experience", "we found", "we tested"}
	authorityPhrases  = []string{"research", "study", "data", "according to"}
	trustPhrases      = []string{"source", "reference", "citation"}
)

// ScoreQuality computes the four-pillar E-E-A-T composite from additive rule
// hits. An empty body is degenerate input and yields the zero score.
func ScoreQuality(body string, entities EntitySet, readabilityScore float64, keywordCount int) QualityScore {
	wordCount := len(strings.Fields(body))
	if wordCount == 0 {
		return QualityScore{Grade: qualityGrade(0)}
	}
	bodyLower := strings.ToLower(body)

	var experience int
	if wordCount > 500 {
		experience += 30
	}
	if wordCount > 1000 {
		experience += 20
	}
	if strings.Contains(bodyLower, "example") || strings.Contains(bodyLower, "for instance") {
		experience += 25
	}
	if containsAny(bodyLower, experiencePhrases) {
		experience += 25
	}

	var expertise int
	if entities.Total() > 5 {
		expertise += 30
	}
	if keywordCount > 3 {
		expertise += 25
	}
	if readabilityScore > 50 {
		expertise += 20
	} else {
		expertise += 10 // too complex or too simple
	}
	if wordCount > 800 {
		expertise += 25
	}

	var authority int
	if len(entities.Organizations) > 0 {
		authority += 30
	}
	if len(entities.People) > 0 {
		authority += 20
	}
	if containsAny(bodyLower, authorityPhrases) {
		authority += 30
	}
	if keywordCount > 5 {
		authority += 20
	}

	var trust int
	if len(entities.Dates) > 0 {
		trust += 25
	}
	if containsAny(bodyLower, trustPhrases) {
		trust += 25
	}
	if readabilityScore >= 60 && readabilityScore <= 80 {
		trust += 25
	}
	if wordCount > 500 {
		trust += 25
	}

	overall := round2(float64(experience+expertise+authority+trust) / 4)
	return QualityScore{
		Overall:           overall,
		Experience:        experience,
		Expertise:         expertise,
		Authoritativeness: authority,
		Trustworthiness:   trust,
		Grade:             qualityGrade(overall),
	}
}

func qualityGrade(overall float64) string {
	switch {
	case overall >= 80:
		return "Excellent"
	case overall >= 60:
		return "Good"
	case overall >= 40:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
