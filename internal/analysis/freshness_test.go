package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trafficwizard/traffic-wizard/internal/config"
)

func TestFreshnessScorerLadder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	scorer := NewFreshnessScorer(config.DefaultThresholds())

	tests := []struct {
		name        string
		daysOld     int
		score       int
		status      string
		needsUpdate bool
	}{
		{"published today", 0, 100, "Very Fresh", false},
		{"within a week", 6, 100, "Very Fresh", false},
		{"within a month", 10, 90, "Fresh", false},
		{"within a quarter", 45, 75, "Recent", false},
		{"within half a year", 120, 60, "Moderate", false},
		{"within a year", 200, 40, "Aging", true},
		{"older than a year", 400, 20, "Outdated", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			createdAt := now.AddDate(0, 0, -tt.daysOld)
			result := scorer.Score(createdAt, now)

			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.daysOld, result.DaysOld)
			assert.Equal(t, tt.needsUpdate, result.NeedsUpdate)
		})
	}
}

func TestFreshnessScorerNormalizesTimezones(t *testing.T) {
	scorer := NewFreshnessScorer(config.DefaultThresholds())
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	createdAt := now.AddDate(0, 0, -10).In(time.FixedZone("UTC+9", 9*3600))

	result := scorer.Score(createdAt, now)

	assert.Equal(t, 10, result.DaysOld)
}
