package analysis

import "strings"

const (
	maxListSnippetItems = 10
	snippetOptimalLow   = 40 // words
	snippetOptimalHigh  = 60
	listOptimizedMin    = 3
)

// ExtractSERPFeatures mines featured-snippet, list, table and paragraph
// candidates from the body for SERP-feature targeting.
func ExtractSERPFeatures(body string) SERPFeatures {
	sentences := splitSentences(body)

	definition := ""
	limit := len(sentences)
	if limit > 5 {
		limit = 5
	}
	for _, sentence := range sentences[:limit] {
		if len(sentence) <= 30 || len(sentence) >= 200 {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, cue := range definitionCues {
			if strings.Contains(lower, cue) {
				definition = sentence
				break
			}
		}
		if definition != "" {
			break
		}
	}

	featured := FeaturedSnippet{
		Optimized:    definition != "",
		OptimalRange: "40-60 words",
	}
	if definition != "" {
		featured.Definition = definition
		featured.WordCount = len(strings.Fields(definition))
	} else if len(sentences) > 0 {
		featured.Definition = sentences[0]
	}

	items := extractListItems(body, maxListSnippetItems)
	list := ListSnippet{
		Items:          items,
		Count:          len(items),
		Optimized:      len(items) >= listOptimizedMin,
		Recommendation: "Add numbered or bulleted lists for better snippet chances",
	}

	candidates := extractTableCandidates(body)
	table := TableSnippet{
		Candidates:        candidates,
		HasStructuredData: len(candidates) > 0,
		Recommendation:    "Structure comparison data in tables for table snippets",
	}

	paragraph := ParagraphSnippet{}
	if len(sentences) > 0 {
		paragraph.FirstParagraph = sentences[0]
		firstWords := len(strings.Fields(sentences[0]))
		paragraph.LengthOptimized = firstWords >= snippetOptimalLow && firstWords <= snippetOptimalHigh
	}

	return SERPFeatures{
		FeaturedSnippet:  featured,
		ListSnippet:      list,
		TableSnippet:     table,
		ParagraphSnippet: paragraph,
	}
}
