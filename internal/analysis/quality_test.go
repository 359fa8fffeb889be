package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreQualityEmptyBody(t *testing.T) {
	result := ScoreQuality("", EntitySet{}, 70, 5)

	assert.Equal(t, 0.0, result.Overall)
	assert.Equal(t, 0, result.Experience)
	assert.Equal(t, 0, result.Expertise)
	assert.Equal(t, 0, result.Authoritativeness)
	assert.Equal(t, 0, result.Trustworthiness)
	assert.Equal(t, "Needs Improvement", result.Grade)
}

func TestScoreQualityPillars(t *testing.T) {
	// 520 filler words plus the trailing phrase words put the count just
	// above the 500-word experience threshold.
	body := strings.Repeat("word ", 520) + "example we tested according to research source"
	entities := EntitySet{
		People: []string{"a", "b", "c", "d", "e", "f"},
	}

	result := ScoreQuality(body, entities, 70, 4)

	// experience: >500 words (30) + "example" (25) + "we tested" (25)
	assert.Equal(t, 80, result.Experience)
	// expertise: >5 entities (30) + >3 keywords (25) + readability >50 (20)
	assert.Equal(t, 75, result.Expertise)
	// authority: people (20) + "research"/"according to" (30)
	assert.Equal(t, 50, result.Authoritativeness)
	// trust: "source" (25) + readability in [60,80] (25) + >500 words (25)
	assert.Equal(t, 75, result.Trustworthiness)
	assert.Equal(t, 70.0, result.Overall)
	assert.Equal(t, "Good", result.Grade)
}

func TestScoreQualityLowReadabilityFloor(t *testing.T) {
	result := ScoreQuality("plain text without signals", EntitySet{}, 20, 0)

	// readability at or below 50 still contributes the floor of 10
	assert.Equal(t, 10, result.Expertise)
}

func TestQualityGrades(t *testing.T) {
	tests := []struct {
		name     string
		overall  float64
		expected string
	}{
		{"excellent at boundary", 80, "Excellent"},
		{"good at boundary", 60, "Good"},
		{"fair at boundary", 40, "Fair"},
		{"needs improvement below fair", 39.99, "Needs Improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, qualityGrade(tt.overall))
		})
	}
}
