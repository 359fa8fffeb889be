package analysis

import (
	"time"

	"github.com/trafficwizard/traffic-wizard/internal/config"
)

// freshnessNeedsUpdate marks the score below which content needs a refresh.
const freshnessNeedsUpdate = 60

// FreshnessScorer computes the age-bucketed decay score.
type FreshnessScorer struct {
	thresholds config.Thresholds
}

// NewFreshnessScorer creates a scorer with the given day-bucket thresholds.
func NewFreshnessScorer(thresholds config.Thresholds) *FreshnessScorer {
	return &FreshnessScorer{thresholds: thresholds}
}

// Score maps age-in-days since createdAt (against now, UTC baseline) onto
// the fixed freshness ladder.
func (f *FreshnessScorer) Score(createdAt, now time.Time) FreshnessScore {
	daysOld := int(now.UTC().Sub(createdAt.UTC()).Hours() / 24)

	var score int
	var status string
	switch {
	case daysOld < f.thresholds.FreshnessVeryFresh:
		score, status = 100, "Very Fresh"
	case daysOld < f.thresholds.FreshnessFresh:
		score, status = 90, "Fresh"
	case daysOld < f.thresholds.FreshnessRecent:
		score, status = 75, "Recent"
	case daysOld < f.thresholds.FreshnessModerate:
		score, status = 60, "Moderate"
	case daysOld < f.thresholds.FreshnessAging:
		score, status = 40, "Aging"
	default:
		score, status = 20, "Outdated"
	}

	return FreshnessScore{
		Score:       score,
		Status:      status,
		DaysOld:     daysOld,
		NeedsUpdate: score < freshnessNeedsUpdate,
	}
}
