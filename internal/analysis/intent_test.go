package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntentInformational(t *testing.T) {
	result := ClassifyIntent("How to learn SQL", "A tutorial covering joins.")

	assert.Equal(t, IntentInformational, result.PrimaryIntent)
	assert.Equal(t, 100.0, result.Intents.Informational)
	assert.Equal(t, 100.0, result.Confidence)
	assert.Equal(t, 0.0, result.Intents.Transactional)
}

func TestClassifyIntentTransactional(t *testing.T) {
	result := ClassifyIntent("Buy a mechanical keyboard", "Purchase today and grab a deal.")

	assert.Equal(t, IntentTransactional, result.PrimaryIntent)
	assert.Equal(t, 100.0, result.Intents.Transactional)
}

func TestClassifyIntentNoSignals(t *testing.T) {
	result := ClassifyIntent("zzz", "qqq")

	assert.Equal(t, IntentInformational, result.PrimaryIntent)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, IntentScores{}, result.Intents)
}

func TestClassifyIntentScoresSumTo100(t *testing.T) {
	result := ClassifyIntent("Best CRM review", "A tutorial on how to purchase a CRM.")

	sum := result.Intents.Informational + result.Intents.Navigational +
		result.Intents.Transactional + result.Intents.Commercial
	assert.InDelta(t, 100.0, sum, 0.05)
	assert.Equal(t, IntentCommercial, result.PrimaryIntent)
}

func TestClassifyIntentTitleOnlyRules(t *testing.T) {
	// navigational and commercial indicators in the body must not count
	result := ClassifyIntent("zzz", "login to the dashboard for the best review")

	assert.Equal(t, 0.0, result.Intents.Navigational)
	assert.Equal(t, 0.0, result.Intents.Commercial)
}
