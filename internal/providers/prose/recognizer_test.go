package prose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensTagsNouns(t *testing.T) {
	r := NewRecognizer()

	tokens, err := r.Tokens("The quick brown fox jumps over the lazy dog.", 0)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	tags := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		tags[tok.Text] = tok.Tag
	}

	assert.Equal(t, "NN", tags["fox"])
	assert.Equal(t, "NN", tags["dog"])
	assert.Equal(t, "DT", tags["The"])
}

func TestRecognizeReturnsLabeledEntities(t *testing.T) {
	r := NewRecognizer()

	entities, err := r.Recognize("Barack Obama gave a speech in Berlin while working for Google.", 0)
	require.NoError(t, err)

	for _, e := range entities {
		assert.NotEmpty(t, e.Text)
		assert.NotEmpty(t, e.Label)
	}
}

func TestBuildDocRespectsCharLimit(t *testing.T) {
	r := NewRecognizer()
	text := strings.Repeat("words and more words. ", 100)

	short, err := r.Tokens(text, 40)
	require.NoError(t, err)
	full, err := r.Tokens(text, 0)
	require.NoError(t, err)

	assert.Less(t, len(short), len(full))
}

func TestBuildDocLimitIsRuneSafe(t *testing.T) {
	r := NewRecognizer()

	// a limit landing inside a multibyte sequence must not split it
	_, err := r.Tokens(strings.Repeat("日本語のテキスト ", 50), 10)

	assert.NoError(t, err)
}

func TestRecognizeEmptyText(t *testing.T) {
	r := NewRecognizer()

	entities, err := r.Recognize("", 0)

	assert.NoError(t, err)
	assert.Empty(t, entities)
}
