package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/trafficwizard/traffic-wizard/internal/config"
)

// Result is the full set of scorer outputs for one content unit. Every
// field is an independent projection; the caller attaches them to its
// content record.
type Result struct {
	Entities         EntitySet          `json:"entities"`
	Semantics        SemanticEnrichment `json:"semantic_enrichment"`
	Metrics          MetricsBundle      `json:"metrics"`
	CitationSnippets []CitationSnippet  `json:"citation_snippets"`
	AnswerBox        AnswerBox          `json:"answer_box"`
	Intent           IntentResult       `json:"search_intent"`
	Quality          QualityScore       `json:"quality_score"`
	SEO              SEOScore           `json:"seo_score"`
	KeywordGap       KeywordGap         `json:"keyword_gap"`
	Traffic          TrafficPrediction  `json:"traffic_prediction"`
	Freshness        *FreshnessScore    `json:"freshness,omitempty"`
	SERP             SERPFeatures       `json:"serp_features"`
	TopicAuthority   TopicAuthority     `json:"topic_authority"`
	PeopleAlsoAsk    []string           `json:"people_also_ask"`
	InternalLinks    []LinkSuggestion   `json:"internal_link_suggestions"`
	AnchorTexts      []AnchorText       `json:"anchor_text_suggestions"`
	TopicCluster     *TopicCluster      `json:"topic_cluster,omitempty"`
}

// Options carries per-pass inputs that sit outside the ContentUnit itself:
// generatively optimized metadata, a caller-supplied competitor keyword set,
// and technical signals known only to the caller.
type Options struct {
	OptimizedTitle       string
	OptimizedDescription string
	CompetitorKeywords   []string
	HasStructuredData    bool
	HasOpenGraphTags     bool
	HasFAQs              bool
	IncludeTopicClusters bool
}

// Analyzer orchestrates the full scoring pass. Components never call each
// other; all composition happens here. Every component is a pure function
// of its inputs, so Analyzer is safe for concurrent use.
type Analyzer struct {
	adapter    *LinguisticAdapter
	gap        *GapAnalyzer
	traffic    *TrafficPredictor
	freshness  *FreshnessScorer
	suggester  KeywordSuggester
	thresholds config.Thresholds
	now        func() time.Time
}

// NewAnalyzer wires the scoring pipeline. Any provider may be nil; the
// affected components then serve their documented defaults.
func NewAnalyzer(recognizer EntityRecognizer, readability ReadabilityScorer, suggester KeywordSuggester, thresholds config.Thresholds) *Analyzer {
	return &Analyzer{
		adapter:    NewLinguisticAdapter(recognizer, readability),
		gap:        NewGapAnalyzer(suggester),
		traffic:    NewTrafficPredictor(thresholds),
		freshness:  NewFreshnessScorer(thresholds),
		suggester:  suggester,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// AnalyzeContent runs every scorer over the unit and returns the combined
// result. Degenerate input (empty body, no keywords) yields well-formed
// zero results; provider failures degrade to the per-component defaults.
func (a *Analyzer) AnalyzeContent(ctx context.Context, unit ContentUnit, opts Options) Result {
	entities := AggregateEntities(a.adapter.RecognizeEntities(unit.Body, a.thresholds.MaxEntityChars))
	semantics := EnrichSemantics(a.adapter.TokenStream(unit.Body, semanticPrefixChars))
	readability := a.adapter.Readability(unit.Body)

	metrics := CalculateMetrics(unit.Body, readability)
	quality := ScoreQuality(unit.Body, entities, readability.FleschReadingEase, len(unit.Keywords))
	serp := ExtractSERPFeatures(unit.Body)

	title := opts.OptimizedTitle
	if title == "" {
		title = unit.Title
	}
	description := opts.OptimizedDescription
	if description == "" {
		description = truncate(unit.Body, 160)
	}
	seo := ScoreSEO(SEOSignals{
		Title:             title,
		Description:       description,
		KeywordCount:      len(unit.Keywords),
		Quality:           &quality,
		HasStructuredData: opts.HasStructuredData,
		HasOpenGraphTags:  opts.HasOpenGraphTags,
		HasFAQs:           opts.HasFAQs,
		HasEntities:       entities.Total() > 0,
	})

	result := Result{
		Entities:         entities,
		Semantics:        semantics,
		Metrics:          metrics,
		CitationSnippets: ExtractCitationSnippets(unit.Body),
		AnswerBox:        ExtractAnswerBox(unit.Body),
		Intent:           ClassifyIntent(unit.Title, unit.Body),
		Quality:          quality,
		SEO:              seo,
		KeywordGap:       a.gap.Analyze(ctx, unit.Body, unit.Keywords, opts.CompetitorKeywords),
		Traffic:          a.traffic.Predict(len(unit.Keywords), quality.Overall, readability.FleschReadingEase, metrics.WordCount, serp.FeaturedSnippet.Optimized),
		SERP:             serp,
		TopicAuthority:   ScoreTopicAuthority(unit.Body, unit.Keywords),
		PeopleAlsoAsk:    PeopleAlsoAsk(unit.Keywords),
		InternalLinks:    SuggestInternalLinks(unit.Keywords),
		AnchorTexts:      SuggestAnchorTexts(unit.Title, unit.Keywords),
	}

	if !unit.CreatedAt.IsZero() {
		freshness := a.freshness.Score(unit.CreatedAt, a.now())
		result.Freshness = &freshness
	}

	if opts.IncludeTopicClusters && a.suggester != nil {
		cluster, err := a.suggester.TopicClusters(ctx, unit.Keywords, unit.Body)
		if err != nil {
			slog.Warn("topic cluster generation unavailable", "error", err)
		} else if cluster.PillarTopic != "" {
			result.TopicCluster = &cluster
		}
	}

	return result
}
