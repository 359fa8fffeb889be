package analysis

import (
	"fmt"
	"strings"
)

// ScoreTopicAuthority measures how authoritative the body is on the given
// keywords: depth from length, coverage from average keyword mentions.
func ScoreTopicAuthority(body string, keywords []string) TopicAuthority {
	wordCount := len(strings.Fields(body))
	bodyLower := strings.ToLower(body)

	mentions := make(map[string]int, len(keywords))
	totalMentions := 0
	for _, kw := range keywords {
		n := strings.Count(bodyLower, strings.ToLower(kw))
		mentions[kw] = n
		totalMentions += n
	}

	depth := float64(wordCount) / 500 * 50
	if depth > 100 {
		depth = 100
	}

	divisor := len(keywords)
	if divisor == 0 {
		divisor = 1
	}
	coverage := float64(totalMentions) / float64(divisor) * 20
	if coverage > 100 {
		coverage = 100
	}

	authority := depth*0.6 + coverage*0.4

	level := "Beginner"
	switch {
	case authority > 80:
		level = "Expert"
	case authority > 60:
		level = "Intermediate"
	}

	return TopicAuthority{
		AuthorityScore:  round2(authority),
		DepthScore:      round2(depth),
		CoverageScore:   round2(coverage),
		KeywordMentions: mentions,
		WordCount:       wordCount,
		ExpertiseLevel:  level,
	}
}

// LinkSuggestion is one internal-linking suggestion.
type LinkSuggestion struct {
	AnchorText    string `json:"anchor_text"`
	SuggestedPage string `json:"suggested_page"`
	Context       string `json:"context"`
}

// SuggestInternalLinks builds internal-linking suggestions from the first
// five keywords plus a hub-page entry for the main topic.
func SuggestInternalLinks(keywords []string) []LinkSuggestion {
	limit := len(keywords)
	if limit > 5 {
		limit = 5
	}
	suggestions := make([]LinkSuggestion, 0, limit+1)
	for _, kw := range keywords[:limit] {
		suggestions = append(suggestions, LinkSuggestion{
			AnchorText:    kw,
			SuggestedPage: fmt.Sprintf("Related article about %s", kw),
			Context:       fmt.Sprintf("Link to comprehensive guide on %s", kw),
		})
	}
	if len(keywords) > 0 {
		suggestions = append(suggestions, LinkSuggestion{
			AnchorText:    fmt.Sprintf("Learn more about %s", keywords[0]),
			SuggestedPage: fmt.Sprintf("%s hub page", keywords[0]),
			Context:       "Hub page linking",
		})
	}
	return suggestions
}

// AnchorText is one backlink anchor-text suggestion.
type AnchorText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Usage string `json:"usage"`
}

// SuggestAnchorTexts builds natural backlink anchor-text variants.
func SuggestAnchorTexts(title string, keywords []string) []AnchorText {
	var anchors []AnchorText

	if len(keywords) > 0 {
		anchors = append(anchors, AnchorText{
			Type:  "exact_match",
			Text:  keywords[0],
			Usage: "Use sparingly for main keyword",
		})
	}

	anchors = append(anchors, AnchorText{
		Type:  "partial_match",
		Text:  truncate(title, 50),
		Usage: "Natural, descriptive anchor",
	})

	anchors = append(anchors, AnchorText{
		Type:  "branded",
		Text:  "Read more on Traffic Wizard",
		Usage: "Brand mention anchor",
	})

	generic := "click here"
	if len(keywords) > 0 {
		generic = fmt.Sprintf("learn about %s", keywords[0])
	}
	anchors = append(anchors, AnchorText{
		Type:  "generic",
		Text:  generic,
		Usage: "Natural flow anchor",
	})

	if len(keywords) > 1 {
		anchors = append(anchors, AnchorText{
			Type:  "long_tail",
			Text:  fmt.Sprintf("%s and %s", keywords[0], keywords[1]),
			Usage: "Long-tail keyword anchor",
		})
	}

	return anchors
}

// paaTemplates are "People Also Ask" question templates over the main topic.
var paaTemplates = []string{
	"What is %s used for?",
	"How does %s work?",
	"Why is %s important?",
	"When should you use %s?",
	"Who benefits from %s?",
	"Where is %s commonly used?",
}

// PeopleAlsoAsk generates PAA-style questions for the first keyword, or a
// generic topic when no keywords exist.
func PeopleAlsoAsk(keywords []string) []string {
	topic := "this topic"
	if len(keywords) > 0 {
		topic = keywords[0]
	}
	questions := make([]string, len(paaTemplates))
	for i, tmpl := range paaTemplates {
		questions[i] = fmt.Sprintf(tmpl, topic)
	}
	return questions
}
