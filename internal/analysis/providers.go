package analysis

import (
	"context"
	"log/slog"
)

// Entity is one recognized surface form with the provider's category label.
type Entity struct {
	Text  string
	Label string
}

// Token is one token of the provider's token stream with its part-of-speech
// tag (Penn Treebank tags: NN, NNS, NNP, NNPS, JJ, ...).
type Token struct {
	Text string
	Tag  string
}

// EntityRecognizer is the external linguistic provider. Implementations must
// not mutate the input and must tolerate being called with the length-capped
// prefix only.
type EntityRecognizer interface {
	Recognize(text string, limitChars int) ([]Entity, error)
	Tokens(text string, limitChars int) ([]Token, error)
}

// Readability is a (Flesch reading ease, Flesch-Kincaid grade) pair.
type Readability struct {
	FleschReadingEase  float64
	FleschKincaidGrade float64
}

// ReadabilityScorer is the external readability-formula provider.
type ReadabilityScorer interface {
	Score(text string) (Readability, error)
}

// KeywordSuggester is the slice of the generative metadata provider the core
// consumes: expected-keyword and topic-cluster generation. Failures degrade
// to empty results at the call site, never past it.
type KeywordSuggester interface {
	ExpectedKeywords(ctx context.Context, body string, primary []string) ([]string, error)
	TopicClusters(ctx context.Context, keywords []string, body string) (TopicCluster, error)
}

// LinguisticAdapter wraps the entity recognizer and readability provider and
// normalizes their failures into empty/default results. It is the single
// place that absorbs provider unavailability for the rest of the pipeline.
type LinguisticAdapter struct {
	recognizer  EntityRecognizer
	readability ReadabilityScorer
}

// NewLinguisticAdapter creates an adapter over the given providers. Either
// provider may be nil; the adapter then serves that provider's default.
func NewLinguisticAdapter(recognizer EntityRecognizer, readability ReadabilityScorer) *LinguisticAdapter {
	return &LinguisticAdapter{recognizer: recognizer, readability: readability}
}

// RecognizeEntities returns recognized entities over a bounded prefix of
// text. Provider absence or failure yields an empty list.
func (a *LinguisticAdapter) RecognizeEntities(text string, maxChars int) []Entity {
	if a.recognizer == nil || text == "" {
		return nil
	}
	entities, err := a.recognizer.Recognize(text, maxChars)
	if err != nil {
		slog.Warn("entity recognizer unavailable, continuing without entities", "error", err)
		return nil
	}
	return entities
}

// TokenStream returns POS-tagged tokens over a bounded prefix of text.
// Provider absence or failure yields an empty stream.
func (a *LinguisticAdapter) TokenStream(text string, maxChars int) []Token {
	if a.recognizer == nil || text == "" {
		return nil
	}
	tokens, err := a.recognizer.Tokens(text, maxChars)
	if err != nil {
		slog.Warn("token provider unavailable, continuing without tokens", "error", err)
		return nil
	}
	return tokens
}

// Readability scores the full text. Provider absence or failure yields the
// neutral zero pair.
func (a *LinguisticAdapter) Readability(text string) Readability {
	if a.readability == nil {
		return Readability{}
	}
	r, err := a.readability.Score(text)
	if err != nil {
		slog.Warn("readability provider unavailable, using neutral default", "error", err)
		return Readability{}
	}
	return r
}

// truncate bounds text to at most limit characters without splitting a rune.
// Non-positive limit means no cap.
func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
