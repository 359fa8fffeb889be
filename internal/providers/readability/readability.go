// Package readability implements the Flesch reading-ease and
// Flesch-Kincaid grade-level formulas over plain text.
package readability

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/trafficwizard/traffic-wizard/internal/analysis"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Scorer implements analysis.ReadabilityScorer. It is stateless and
// safe for concurrent use.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes both Flesch formulas. Reading ease is clamped to
// [0, 100]; grade level is clamped at zero. Empty text scores zero.
func (s *Scorer) Score(text string) (analysis.Readability, error) {
	words := fieldsAlpha(text)
	if len(words) == 0 {
		return analysis.Readability{}, nil
	}

	sentences := countSentences(text)
	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	ease := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	grade := 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59

	return analysis.Readability{
		FleschReadingEase:  clamp(ease, 0, 100),
		FleschKincaidGrade: clamp(grade, 0, 20),
	}, nil
}

// fieldsAlpha splits text into words, keeping only tokens that contain
// at least one letter so punctuation runs do not inflate the counts.
func fieldsAlpha(text string) []string {
	fields := strings.Fields(text)
	words := fields[:0]
	for _, field := range fields {
		if strings.IndexFunc(field, unicode.IsLetter) >= 0 {
			words = append(words, field)
		}
	}
	return words
}

func countSentences(text string) int {
	n := 0
	for _, chunk := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(chunk) != "" {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// countSyllables estimates syllables by counting vowel groups, with the
// usual silent-e adjustment. Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		return 1
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
