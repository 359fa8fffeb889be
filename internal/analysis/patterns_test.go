package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCitationSnippets(t *testing.T) {
	body := "According to a recent industry survey, 75 percent of marketers saw better results. " +
		"Research shows that structured content earns substantially more organic clicks overall. " +
		"Short line. " +
		"This sentence is long enough to qualify but carries no quotable statistic or attribution at all."

	snippets := ExtractCitationSnippets(body)

	assert.Len(t, snippets, 2)
	// the statistic rule outranks the attribution rule for the first sentence
	assert.Equal(t, SnippetStatistic, snippets[0].Type)
	assert.Contains(t, snippets[0].Text, "75 percent")
	assert.Equal(t, SnippetExpertQuote, snippets[1].Type)
	assert.Equal(t, 0.9, snippets[0].Relevance)
}

func TestExtractCitationSnippetsLengthBounds(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"too short", "Growth hit 90%.", 0},
		{"too long", "According to analysts, " + strings.Repeat("very ", 50) + "long sentence.", 0},
		{"empty body", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ExtractCitationSnippets(tt.body), tt.want)
		})
	}
}

func TestExtractCitationSnippetsCap(t *testing.T) {
	sentence := "According to experts in the field, this practice keeps improving results every year. "
	body := strings.Repeat(sentence, 8)

	assert.Len(t, ExtractCitationSnippets(body), 5)
}

func TestExtractAnswerBoxDefinition(t *testing.T) {
	body := "Content marketing is a strategic approach focused on creating valuable material. " +
		"It builds trust over time."

	box := ExtractAnswerBox(body)

	assert.Equal(t, "Content marketing is a strategic approach focused on creating valuable material", box.Definition)
	assert.Equal(t, box.Definition, box.QuickAnswer)
}

func TestExtractAnswerBoxListsAndSteps(t *testing.T) {
	body := "Follow this plan.\n" +
		"1. Research the topic\n" +
		"2. Draft the outline\n" +
		"- Publish and promote\n" +
		"Step 1: Gather the keyword data. Step 2: Write the first draft."

	box := ExtractAnswerBox(body)

	assert.Equal(t, []string{"Research the topic", "Draft the outline", "Publish and promote"}, box.ListItems)
	assert.Len(t, box.Steps, 2)
	assert.Equal(t, "Gather the keyword data.", box.Steps[0])
	assert.Equal(t, "Write the first draft.", box.Steps[1])
}

func TestExtractAnswerBoxEmptyBody(t *testing.T) {
	box := ExtractAnswerBox("")

	assert.Empty(t, box.Definition)
	assert.Empty(t, box.QuickAnswer)
	assert.Empty(t, box.ListItems)
	assert.Empty(t, box.Steps)
}

func TestExtractListItemsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("- bullet entry\n")
	}

	assert.Len(t, extractListItems(b.String(), 8), 8)
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("First here. Second there! Third one? ")

	assert.Equal(t, []string{"First here", "Second there", "Third one"}, sentences)
}
