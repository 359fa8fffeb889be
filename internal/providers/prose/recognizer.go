// Package prose adapts the jdkato/prose NLP toolkit to the analysis
// provider interfaces. Building a prose document runs tokenization,
// POS tagging, and named-entity recognition in one pass, so the
// recognizer builds the document once per call and projects the view
// the caller asked for.
package prose

import (
	"fmt"

	prosev2 "github.com/jdkato/prose/v2"

	"github.com/trafficwizard/traffic-wizard/internal/analysis"
)

// Recognizer implements analysis.EntityRecognizer on top of prose.
// It is stateless and safe for concurrent use.
type Recognizer struct{}

func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Recognize returns the named entities found in the first limitChars
// characters of text, in document order.
func (r *Recognizer) Recognize(text string, limitChars int) ([]analysis.Entity, error) {
	doc, err := r.buildDoc(text, limitChars, prosev2.WithExtraction(true))
	if err != nil {
		return nil, err
	}
	raw := doc.Entities()
	entities := make([]analysis.Entity, 0, len(raw))
	for _, ent := range raw {
		entities = append(entities, analysis.Entity{Text: ent.Text, Label: ent.Label})
	}
	return entities, nil
}

// Tokens returns POS-tagged tokens for the first limitChars characters
// of text. Tags follow the Penn Treebank set.
func (r *Recognizer) Tokens(text string, limitChars int) ([]analysis.Token, error) {
	doc, err := r.buildDoc(text, limitChars, prosev2.WithExtraction(false), prosev2.WithTagging(true))
	if err != nil {
		return nil, err
	}
	raw := doc.Tokens()
	tokens := make([]analysis.Token, 0, len(raw))
	for _, tok := range raw {
		tokens = append(tokens, analysis.Token{Text: tok.Text, Tag: tok.Tag})
	}
	return tokens, nil
}

func (r *Recognizer) buildDoc(text string, limitChars int, opts ...prosev2.DocOpt) (*prosev2.Document, error) {
	if limitChars > 0 {
		runes := []rune(text)
		if len(runes) > limitChars {
			text = string(runes[:limitChars])
		}
	}
	doc, err := prosev2.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("building prose document: %w", err)
	}
	return doc, nil
}
