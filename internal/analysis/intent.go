package analysis

import "strings"

// Search-intent categories, in the fixed enumeration order used for
// tie-breaking.
const (
	IntentInformational = "informational"
	IntentNavigational  = "navigational"
	IntentTransactional = "transactional"
	IntentCommercial    = "commercial"
)

var intentOrder = []string{
	IntentInformational, IntentNavigational, IntentTransactional, IntentCommercial,
}

// intentRules maps each category to its indicator words, per-hit weight,
// and whether indicators only count when found in the title.
var intentRules = map[string]struct {
	words     []string
	weight    float64
	titleOnly bool
}{
	IntentInformational: {
		words:  []string{"what", "why", "how", "guide", "tutorial", "learn", "understand", "explain", "definition"},
		weight: 10,
	},
	IntentNavigational: {
		words:     []string{"login", "sign up", "account", "dashboard", "portal", "official"},
		weight:    15,
		titleOnly: true,
	},
	IntentTransactional: {
		words:  []string{"buy", "purchase", "order", "download", "subscribe", "get", "shop", "deal"},
		weight: 10,
	},
	IntentCommercial: {
		words:     []string{"best", "top", "review", "comparison", "vs", "versus", "alternative", "pricing"},
		weight:    12,
		titleOnly: true,
	},
}

// intentContentPrefixChars bounds how much of the body the classifier scans.
const intentContentPrefixChars = 500

// ClassifyIntent classifies title+content into a search-intent profile.
// Scores are normalized to sum to 100; when nothing matches, all four stay
// zero and the primary intent is the first category in enumeration order.
func ClassifyIntent(title, content string) IntentResult {
	titleLower := strings.ToLower(title)
	prefixLower := strings.ToLower(truncate(content, intentContentPrefixChars))

	scores := map[string]float64{}
	for category, rule := range intentRules {
		for _, word := range rule.words {
			if strings.Contains(titleLower, word) {
				scores[category] += rule.weight
				continue
			}
			if !rule.titleOnly && strings.Contains(prefixLower, word) {
				scores[category] += rule.weight
			}
		}
	}

	total := 0.0
	for _, v := range scores {
		total += v
	}
	if total > 0 {
		for k, v := range scores {
			scores[k] = round2(v / total * 100)
		}
	}

	primary := intentOrder[0]
	best := scores[primary]
	for _, category := range intentOrder[1:] {
		if scores[category] > best {
			primary = category
			best = scores[category]
		}
	}

	return IntentResult{
		Intents: IntentScores{
			Informational: scores[IntentInformational],
			Navigational:  scores[IntentNavigational],
			Transactional: scores[IntentTransactional],
			Commercial:    scores[IntentCommercial],
		},
		PrimaryIntent: primary,
		Confidence:    best,
	}
}
