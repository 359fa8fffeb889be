package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trafficwizard/traffic-wizard/internal/config"
)

// fakeRecognizer serves canned entities and tokens.
type fakeRecognizer struct {
	entities []Entity
	tokens   []Token
	err      error
}

func (f *fakeRecognizer) Recognize(_ string, _ int) ([]Entity, error) {
	return f.entities, f.err
}

func (f *fakeRecognizer) Tokens(_ string, _ int) ([]Token, error) {
	return f.tokens, f.err
}

// fakeReadability serves a fixed score pair.
type fakeReadability struct {
	result Readability
	err    error
}

func (f *fakeReadability) Score(_ string) (Readability, error) {
	return f.result, f.err
}

func testUnit() ContentUnit {
	return ContentUnit{
		Title:    "How to Improve Organic Traffic",
		Body:     "Organic traffic is the stream of visitors arriving from unpaid search results. Research shows consistent publishing compounds over time.",
		Keywords: []string{"organic traffic", "seo"},
	}
}

func TestAnalyzeContentDeterministic(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil, config.DefaultThresholds())
	ctx := context.Background()

	first := analyzer.AnalyzeContent(ctx, testUnit(), Options{})
	second := analyzer.AnalyzeContent(ctx, testUnit(), Options{})

	assert.Equal(t, first, second)
}

func TestAnalyzeContentEmptyUnit(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil, config.DefaultThresholds())

	result := analyzer.AnalyzeContent(context.Background(), ContentUnit{}, Options{})

	assert.Equal(t, 0, result.Entities.Total())
	assert.Equal(t, 0, result.Metrics.WordCount)
	assert.Equal(t, 0.0, result.Quality.Overall)
	assert.Nil(t, result.Freshness)
	assert.Nil(t, result.TopicCluster)
	assert.Equal(t, 0, result.Traffic.Estimate.Mid)
	assert.Equal(t, IntentInformational, result.Intent.PrimaryIntent)
	assert.NotEmpty(t, result.SEO.Grade)
}

func TestAnalyzeContentWiresProviders(t *testing.T) {
	recognizer := &fakeRecognizer{
		entities: []Entity{{Text: "Google", Label: "ORG"}},
		tokens:   []Token{{Text: "traffic", Tag: "NN"}},
	}
	readability := &fakeReadability{result: Readability{FleschReadingEase: 72, FleschKincaidGrade: 7}}
	analyzer := NewAnalyzer(recognizer, readability, nil, config.DefaultThresholds())

	result := analyzer.AnalyzeContent(context.Background(), testUnit(), Options{})

	assert.Equal(t, []string{"Google"}, result.Entities.Organizations)
	assert.Equal(t, []string{"traffic"}, result.Semantics.SemanticKeywords)
	assert.Equal(t, 72.0, result.Metrics.ReadabilityScore)
	assert.Equal(t, "Fairly Easy", result.Metrics.ReadingLevel)
	// recognized entities feed the technical SEO signal
	assert.GreaterOrEqual(t, result.SEO.Breakdown.Technical, 5)
}

func TestAnalyzeContentProviderFailuresDegrade(t *testing.T) {
	recognizer := &fakeRecognizer{err: errors.New("model unavailable")}
	readability := &fakeReadability{err: errors.New("scorer unavailable")}
	analyzer := NewAnalyzer(recognizer, readability, nil, config.DefaultThresholds())

	result := analyzer.AnalyzeContent(context.Background(), testUnit(), Options{})

	assert.Equal(t, 0, result.Entities.Total())
	assert.Empty(t, result.Semantics.SemanticKeywords)
	assert.Equal(t, 0.0, result.Metrics.ReadabilityScore)
}

func TestAnalyzeContentFreshness(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil, config.DefaultThresholds())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	analyzer.now = func() time.Time { return now }

	unit := testUnit()
	unit.CreatedAt = now.AddDate(0, 0, -45)

	result := analyzer.AnalyzeContent(context.Background(), unit, Options{})

	if assert.NotNil(t, result.Freshness) {
		assert.Equal(t, 45, result.Freshness.DaysOld)
		assert.Equal(t, "Recent", result.Freshness.Status)
	}
}

func TestAnalyzeContentTopicClusters(t *testing.T) {
	cluster := TopicCluster{
		PillarTopic:    "organic traffic",
		PillarKeywords: []string{"seo"},
	}
	suggester := &stubSuggester{cluster: cluster}
	analyzer := NewAnalyzer(nil, nil, suggester, config.DefaultThresholds())

	result := analyzer.AnalyzeContent(context.Background(), testUnit(), Options{IncludeTopicClusters: true})

	if assert.NotNil(t, result.TopicCluster) {
		assert.Equal(t, "organic traffic", result.TopicCluster.PillarTopic)
	}
}

func TestAnalyzeContentTopicClustersSkipped(t *testing.T) {
	tests := []struct {
		name      string
		suggester KeywordSuggester
		opts      Options
	}{
		{"not requested", &stubSuggester{cluster: TopicCluster{PillarTopic: "x"}}, Options{}},
		{"no suggester", nil, Options{IncludeTopicClusters: true}},
		{"provider failure", &stubSuggester{clusterErr: errors.New("quota")}, Options{IncludeTopicClusters: true}},
		{"empty pillar", &stubSuggester{}, Options{IncludeTopicClusters: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewAnalyzer(nil, nil, tt.suggester, config.DefaultThresholds())
			result := analyzer.AnalyzeContent(context.Background(), testUnit(), tt.opts)
			assert.Nil(t, result.TopicCluster)
		})
	}
}

func TestAnalyzeContentOptimizedMetadataFeedsSEO(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil, config.DefaultThresholds())
	opts := Options{
		OptimizedTitle:       "A Fifty-Five Character Title Tuned for Search Results",
		OptimizedDescription: "A meta description tuned to sit inside the optimal band for search snippets, padded until the measured character count lands between one fifty and one sixty.",
	}

	plain := analyzer.AnalyzeContent(context.Background(), testUnit(), Options{})
	tuned := analyzer.AnalyzeContent(context.Background(), testUnit(), opts)

	assert.Greater(t, tuned.SEO.Breakdown.Title+tuned.SEO.Breakdown.Description,
		plain.SEO.Breakdown.Title+plain.SEO.Breakdown.Description)
}
