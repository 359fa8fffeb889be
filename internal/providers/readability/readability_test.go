package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmptyText(t *testing.T) {
	scorer := NewScorer()

	result, err := scorer.Score("")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.FleschReadingEase)
	assert.Equal(t, 0.0, result.FleschKincaidGrade)
}

func TestScoreSimpleText(t *testing.T) {
	scorer := NewScorer()

	// four one-syllable words in one sentence:
	// ease = 206.835 - 1.015*4 - 84.6*1 = 118.175, clamped to 100
	result, err := scorer.Score("The cat sat down.")

	assert.NoError(t, err)
	assert.Equal(t, 100.0, result.FleschReadingEase)
	assert.Equal(t, 0.0, result.FleschKincaidGrade)
}

func TestScoreComplexText(t *testing.T) {
	scorer := NewScorer()
	text := strings.TrimSpace(strings.Repeat(
		"Organizational representatives communicated extraordinarily complicated administrative responsibilities. ", 3))

	result, err := scorer.Score(text)

	assert.NoError(t, err)
	assert.Less(t, result.FleschReadingEase, 30.0)
	assert.Greater(t, result.FleschKincaidGrade, 12.0)
}

func TestScoreClampBounds(t *testing.T) {
	scorer := NewScorer()

	easy, err := scorer.Score("Go. Run. Sit.")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, easy.FleschReadingEase, 0.0)
	assert.LessOrEqual(t, easy.FleschReadingEase, 100.0)
	assert.GreaterOrEqual(t, easy.FleschKincaidGrade, 0.0)
	assert.LessOrEqual(t, easy.FleschKincaidGrade, 20.0)
}

func TestScoreDeterministic(t *testing.T) {
	scorer := NewScorer()
	text := "Readability scoring must return identical values for identical input."

	first, err := scorer.Score(text)
	assert.NoError(t, err)
	second, err := scorer.Score(text)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		// trailing -le keeps its syllable, plain silent e drops
		{"table", 2},
		{"home", 1},
		{"beautiful", 3},
		// y counts as a vowel
		{"rhythm", 1},
		{"a", 1},
		{"", 1},
		// punctuation-only token floors at one
		{"..", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, countSyllables(tt.word))
		})
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"multiple sentences", "One here. Two there! Three anywhere?", 3},
		{"no terminator", "trailing fragment", 1},
		{"empty text floors at one", "", 1},
		{"repeated punctuation", "Wait... what happened?", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countSentences(tt.text))
		})
	}
}

func TestFieldsAlpha(t *testing.T) {
	words := fieldsAlpha("count me - but not 123 or ***")

	assert.Equal(t, []string{"count", "me", "but", "not", "or"}, words)
}
