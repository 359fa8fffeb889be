package analysis

import (
	"regexp"
	"strings"
)

// citationRule pairs a pattern with the classification it implies.
type citationRule struct {
	pattern *regexp.Regexp
	kind    string
}

// citationRules is the fixed rule set for citation-worthy sentences. Order
// matters: the first matching rule classifies the sentence.
var citationRules = []citationRule{
	{regexp.MustCompile(`\d+%`), SnippetStatistic},
	{regexp.MustCompile(`(?i)\d+\s+(percent|billion|million|thousand)`), SnippetStatistic},
	{regexp.MustCompile(`(?i)according to`), SnippetExpertQuote},
	{regexp.MustCompile(`(?i)research shows`), SnippetExpertQuote},
	{regexp.MustCompile(`(?i)studies indicate`), SnippetExpertQuote},
	{regexp.MustCompile(`(?i)experts say`), SnippetExpertQuote},
	{regexp.MustCompile(`(?i)data reveals`), SnippetExpertQuote},
	{regexp.MustCompile(`(?i)findings show`), SnippetExpertQuote},
	{regexp.MustCompile(`(?i)analysis indicates`), SnippetExpertQuote},
}

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	listItemPattern  = regexp.MustCompile(`(?m)^(?:\d+\.|[-•*])\s*(.+)$`)
	stepHeader       = regexp.MustCompile(`(?i)(?:step|stage)\s*\d+:?\s*`)
	tableLinePattern = regexp.MustCompile(`(?m)^([^:\n]+):\s*(.+)$`)
)

const (
	maxCitationSnippets = 5
	minSnippetLen       = 50
	maxSnippetLen       = 200
	maxListItems        = 8
	maxSteps            = 6
	maxTableCandidates  = 5
	citationRelevance   = 0.9
)

// definitionCues are copula-like words that mark a definition-style sentence.
// Matching is by substring, same as the scoring rules elsewhere.
var definitionCues = []string{"is", "are", "means", "refers to"}

// splitSentences splits text on sentence boundaries and trims each piece.
// Empty pieces are dropped.
func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// ExtractCitationSnippets mines quotable statements from the body: sentences
// of 50-200 characters matching at least one citation rule, classified by
// the first rule that matched, in scan order, capped at five.
func ExtractCitationSnippets(body string) []CitationSnippet {
	var snippets []CitationSnippet
	for _, sentence := range splitSentences(body) {
		if len(sentence) < minSnippetLen || len(sentence) > maxSnippetLen {
			continue
		}
		for _, rule := range citationRules {
			if rule.pattern.MatchString(sentence) {
				snippets = append(snippets, CitationSnippet{
					Text:      sentence,
					Type:      rule.kind,
					Relevance: citationRelevance,
				})
				break
			}
		}
		if len(snippets) == maxCitationSnippets {
			break
		}
	}
	return snippets
}

// extractDefinition scans the first five sentences for a definition-style
// sentence (contains a copula cue, length in (30,200)). Falls back to the
// first sentence, or "" when the body has none.
func extractDefinition(sentences []string) string {
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
				return sentence
			}
		}
	}
	if len(sentences) > 0 {
		return sentences[0]
	}
	return ""
}

// extractListItems returns bulleted or numbered line items, capped at limit.
func extractListItems(body string, limit int) []string {
	matches := listItemPattern.FindAllStringSubmatch(body, -1)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, strings.TrimSpace(m[1]))
		if len(items) == limit {
			break
		}
	}
	return items
}

// extractSteps returns "step N:"/"stage N:" sequences in document order,
// each step's text running until the next step header, capped at six.
func extractSteps(body string) []string {
	headers := stepHeader.FindAllStringIndex(body, -1)
	steps := make([]string, 0, len(headers))
	for i, h := range headers {
		end := len(body)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		step := strings.TrimSpace(body[h[1]:end])
		if step != "" {
			steps = append(steps, step)
		}
		if len(steps) == maxSteps {
			break
		}
	}
	return steps
}

// extractTableCandidates returns "label: value" lines, capped at five.
func extractTableCandidates(body string) []TablePair {
	matches := tableLinePattern.FindAllStringSubmatch(body, -1)
	pairs := make([]TablePair, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, TablePair{
			Label: strings.TrimSpace(m[1]),
			Value: strings.TrimSpace(m[2]),
		})
		if len(pairs) == maxTableCandidates {
			break
		}
	}
	return pairs
}

// ExtractAnswerBox mines definition, list items and step sequences for
// answer-box targeting. Given identical input the result is identical:
// there is no internal state and scan order is fixed.
func ExtractAnswerBox(body string) AnswerBox {
	sentences := splitSentences(body)
	definition := extractDefinition(sentences)

	quickAnswer := definition
	if quickAnswer == "" && body != "" {
		quickAnswer = truncate(body, 160)
	}

	return AnswerBox{
		Definition:  definition,
		ListItems:   extractListItems(body, maxListItems),
		Steps:       extractSteps(body),
		QuickAnswer: quickAnswer,
	}
}
