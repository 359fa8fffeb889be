package analysis

import (
	"fmt"

	"github.com/trafficwizard/traffic-wizard/internal/config"
)

// Fixed traffic-formula constants. The keyword base and the low/high spread
// are empirically chosen; see config.Thresholds for the operator-tunable
// cutoffs.
const (
	keywordVolumeWeight = 10
	baseTrafficFactor   = 5
	lowEstimateFactor   = 0.5
	highEstimateFactor  = 1.8
	snippetBonusFactor  = 1.5
)

// TrafficPredictor converts quality/readability/length/snippet signals into
// a bounded monthly traffic estimate.
type TrafficPredictor struct {
	thresholds config.Thresholds
}

// NewTrafficPredictor creates a predictor with the given threshold set.
func NewTrafficPredictor(thresholds config.Thresholds) *TrafficPredictor {
	return &TrafficPredictor{thresholds: thresholds}
}

// Predict runs the deterministic traffic formula. The estimate satisfies
// low <= mid <= high by construction.
func (p *TrafficPredictor) Predict(keywordCount int, qualityScore, readabilityScore float64, contentLength int, hasFeaturedSnippet bool) TrafficPrediction {
	base := float64(keywordCount * keywordVolumeWeight * baseTrafficFactor)

	quality := qualityScore / 100

	readability := 0.8
	switch {
	case readabilityScore >= p.thresholds.ReadabilityOptimalLow && readabilityScore <= p.thresholds.ReadabilityOptimalHigh:
		readability = 1.2
	case readabilityScore >= 50 && readabilityScore <= 90:
		readability = 1.0
	}

	length := 0.7
	switch {
	case contentLength >= p.thresholds.OptimalWordCount:
		length = 1.3
	case contentLength >= p.thresholds.MinWordCount:
		length = 1.0
	}

	snippetBonus := 1.0
	if hasFeaturedSnippet {
		snippetBonus = snippetBonusFactor
	}

	mid := base * quality * readability * length * snippetBonus

	estimate := TrafficEstimate{
		Low:  int(mid * lowEstimateFactor),
		Mid:  int(mid),
		High: int(mid * highEstimateFactor),
	}

	tier := "Low"
	switch {
	case estimate.Mid > p.thresholds.HighVolumeThreshold:
		tier = "High"
	case estimate.Mid > p.thresholds.MediumVolumeThreshold:
		tier = "Medium"
	}

	return TrafficPrediction{
		Estimate:   estimate,
		Tier:       tier,
		Confidence: "Medium",
		Factors: TrafficFactors{
			KeywordCount:       keywordCount,
			QualityScore:       qualityScore,
			ReadabilityScore:   readabilityScore,
			ContentLength:      contentLength,
			HasFeaturedSnippet: hasFeaturedSnippet,
		},
		Multipliers: TrafficMultipliers{
			Quality:      round2(quality),
			Readability:  readability,
			Length:       length,
			SnippetBonus: snippetBonus,
		},
		Recommendations: p.recommendations(qualityScore, readabilityScore, contentLength, hasFeaturedSnippet),
	}
}

func (p *TrafficPredictor) recommendations(qualityScore, readabilityScore float64, contentLength int, hasFeaturedSnippet bool) []string {
	var recs []string
	if qualityScore < 70 {
		recs = append(recs, "Improve content quality with more research, examples, and expert insights")
	}
	if readabilityScore < p.thresholds.ReadabilityOptimalLow || readabilityScore > p.thresholds.ReadabilityOptimalHigh {
		recs = append(recs, fmt.Sprintf("Adjust readability to %.0f-%.0f range for optimal engagement",
			p.thresholds.ReadabilityOptimalLow, p.thresholds.ReadabilityOptimalHigh))
	}
	if contentLength < p.thresholds.OptimalWordCount {
		recs = append(recs, fmt.Sprintf("Expand content to %d+ words for better rankings", p.thresholds.OptimalWordCount))
	}
	if !hasFeaturedSnippet {
		recs = append(recs, "Add clear definitions and structured lists to target featured snippets")
	}
	recs = append(recs,
		"Build quality backlinks to increase domain authority",
		"Promote on social media to generate initial traffic signals",
	)
	return recs
}
