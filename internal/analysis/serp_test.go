package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSERPFeaturesDefinition(t *testing.T) {
	body := "Link building is the practice of earning hyperlinks from other websites. " +
		"It remains a core ranking factor."

	features := ExtractSERPFeatures(body)

	assert.True(t, features.FeaturedSnippet.Optimized)
	assert.Equal(t, "Link building is the practice of earning hyperlinks from other websites", features.FeaturedSnippet.Definition)
	assert.Equal(t, 11, features.FeaturedSnippet.WordCount)
	assert.Equal(t, "40-60 words", features.FeaturedSnippet.OptimalRange)
}

func TestExtractSERPFeaturesNoDefinition(t *testing.T) {
	features := ExtractSERPFeatures("Hello world. Quick nod.")

	assert.False(t, features.FeaturedSnippet.Optimized)
	// falls back to the opening sentence without claiming optimization
	assert.Equal(t, "Hello world", features.FeaturedSnippet.Definition)
	assert.Equal(t, 0, features.FeaturedSnippet.WordCount)
	assert.Equal(t, "Hello world", features.ParagraphSnippet.FirstParagraph)
	assert.False(t, features.ParagraphSnippet.LengthOptimized)
}

func TestExtractSERPFeaturesListSnippet(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		count     int
		optimized bool
	}{
		{"three items qualify", "- one thing\n- two thing\n- red thing\n", 3, true},
		{"two items do not", "- one thing\n- two thing\n", 2, false},
		{"no items", "plain prose only", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := ExtractSERPFeatures(tt.body)

			assert.Equal(t, tt.count, features.ListSnippet.Count)
			assert.Equal(t, tt.optimized, features.ListSnippet.Optimized)
			assert.NotEmpty(t, features.ListSnippet.Recommendation)
		})
	}
}

func TestExtractSERPFeaturesTableSnippet(t *testing.T) {
	body := "Plan A price comes first\nPrice tier: $10 per month\nSpeed rating: very fast"

	features := ExtractSERPFeatures(body)

	assert.True(t, features.TableSnippet.HasStructuredData)
	assert.Equal(t, []TablePair{
		{Label: "Price tier", Value: "$10 per month"},
		{Label: "Speed rating", Value: "very fast"},
	}, features.TableSnippet.Candidates)
}

func TestExtractSERPFeaturesEmptyBody(t *testing.T) {
	features := ExtractSERPFeatures("")

	assert.False(t, features.FeaturedSnippet.Optimized)
	assert.Empty(t, features.FeaturedSnippet.Definition)
	assert.Empty(t, features.ParagraphSnippet.FirstParagraph)
	assert.False(t, features.TableSnippet.HasStructuredData)
	assert.Equal(t, 0, features.ListSnippet.Count)
}
