package analysis

import "time"

// ContentUnit is the immutable input to every scorer. The caller owns it
// for the duration of one scoring pass; nothing here mutates it.
type ContentUnit struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	Keywords  []string  `json:"keywords"`
}

// EntitySet buckets recognized entities by category. Each list is
// deduplicated and capped at maxEntitiesPerBucket entries.
type EntitySet struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
	Products      []string `json:"products"`
	Other         []string `json:"other"`
}

// Total returns the entity count summed across all categories.
func (e EntitySet) Total() int {
	return len(e.People) + len(e.Organizations) + len(e.Locations) +
		len(e.Dates) + len(e.Products) + len(e.Other)
}

// SemanticEnrichment carries derived related-concept and semantic-keyword
// lists from the linguistic provider's token stream.
type SemanticEnrichment struct {
	RelatedConcepts  []string `json:"related_concepts"`
	SemanticKeywords []string `json:"semantic_keywords"`
}

// MetricsBundle holds readability and lexical metrics for one content unit.
type MetricsBundle struct {
	ReadabilityScore float64            `json:"readability_score"`
	GradeLevel       float64            `json:"grade_level"`
	ReadingLevel     string             `json:"reading_level"`
	WordCount        int                `json:"word_count"`
	KeywordDensity   map[string]float64 `json:"keyword_density"`
	Recommendations  []string           `json:"recommendations"`
}

// CitationSnippet is a quotable, citation-worthy sentence.
type CitationSnippet struct {
	Text      string  `json:"text"`
	Type      string  `json:"type"`
	Relevance float64 `json:"relevance"`
}

// Snippet classification labels.
const (
	SnippetStatistic   = "statistic"
	SnippetExpertQuote = "expert_quote"
)

// AnswerBox holds content optimized for search-engine answer boxes.
type AnswerBox struct {
	Definition  string   `json:"definition,omitempty"`
	ListItems   []string `json:"list_items"`
	Steps       []string `json:"steps"`
	QuickAnswer string   `json:"quick_answer,omitempty"`
}

// IntentScores holds the normalized per-intent scores. After accumulation
// the four values sum to 100, or are all zero when no indicator matched.
type IntentScores struct {
	Informational float64 `json:"informational"`
	Navigational  float64 `json:"navigational"`
	Transactional float64 `json:"transactional"`
	Commercial    float64 `json:"commercial"`
}

// IntentResult is the outcome of search-intent classification.
type IntentResult struct {
	Intents       IntentScores `json:"intents"`
	PrimaryIntent string       `json:"primary_intent"`
	Confidence    float64      `json:"confidence"`
}

// QualityScore is the four-pillar E-E-A-T composite.
type QualityScore struct {
	Overall           float64 `json:"overall_quality"`
	Experience        int     `json:"experience_score"`
	Expertise         int     `json:"expertise_score"`
	Authoritativeness int     `json:"authoritativeness_score"`
	Trustworthiness   int     `json:"trustworthiness_score"`
	Grade             string  `json:"grade"`
}

// SEOBreakdown holds the five SEO sub-scores, each capped at 20.
type SEOBreakdown struct {
	Title          int `json:"title"`
	Description    int `json:"description"`
	Keywords       int `json:"keywords"`
	ContentQuality int `json:"content_quality"`
	Technical      int `json:"technical"`
}

// SEOScore is the five-pillar SEO composite (overall 0-100).
type SEOScore struct {
	Overall         int          `json:"overall_score"`
	Breakdown       SEOBreakdown `json:"breakdown"`
	Grade           string       `json:"grade"`
	Recommendations []string     `json:"recommendations"`
}

// KeywordGap reports expected-keyword coverage against the body's vocabulary.
type KeywordGap struct {
	CoverageScore   float64  `json:"coverage_score"`
	TotalExpected   int      `json:"total_expected"`
	Covered         int      `json:"covered"`
	Missing         int      `json:"missing"`
	MissingKeywords []string `json:"missing_keywords"`
	CoveredKeywords []string `json:"covered_keywords"`
	Recommendations []string `json:"recommendations"`
}

// TrafficEstimate is the low/mid/high monthly estimate, low <= mid <= high.
type TrafficEstimate struct {
	Low  int `json:"low"`
	Mid  int `json:"mid"`
	High int `json:"high"`
}

// TrafficFactors snapshots the inputs the prediction was derived from.
type TrafficFactors struct {
	KeywordCount       int     `json:"keyword_count"`
	QualityScore       float64 `json:"quality_score"`
	ReadabilityScore   float64 `json:"readability_score"`
	ContentLength      int     `json:"content_length"`
	HasFeaturedSnippet bool    `json:"has_featured_snippet"`
}

// TrafficMultipliers is the multiplier breakdown of the prediction formula.
type TrafficMultipliers struct {
	Quality      float64 `json:"quality"`
	Readability  float64 `json:"readability"`
	Length       float64 `json:"length"`
	SnippetBonus float64 `json:"snippet_bonus"`
}

// TrafficPrediction is a bounded traffic-volume estimate with its tier.
type TrafficPrediction struct {
	Estimate        TrafficEstimate    `json:"estimated_monthly_traffic"`
	Tier            string             `json:"traffic_tier"`
	Confidence      string             `json:"confidence"`
	Factors         TrafficFactors     `json:"factors"`
	Multipliers     TrafficMultipliers `json:"multipliers"`
	Recommendations []string           `json:"recommendations"`
}

// FreshnessScore is the age-bucketed decay score of a content unit.
type FreshnessScore struct {
	Score       int    `json:"freshness_score"`
	Status      string `json:"status"`
	DaysOld     int    `json:"days_old"`
	NeedsUpdate bool   `json:"needs_update"`
}

// TablePair is a label/value line mined as a table-snippet candidate.
type TablePair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FeaturedSnippet is the definition-style featured-snippet candidate.
type FeaturedSnippet struct {
	Definition   string `json:"definition,omitempty"`
	Optimized    bool   `json:"optimized"`
	WordCount    int    `json:"word_count"`
	OptimalRange string `json:"optimal_range"`
}

// ListSnippet holds bulleted/numbered list-snippet candidates.
type ListSnippet struct {
	Items          []string `json:"items"`
	Count          int      `json:"count"`
	Optimized      bool     `json:"optimized"`
	Recommendation string   `json:"recommendation"`
}

// TableSnippet holds label:value table-snippet candidates.
type TableSnippet struct {
	Candidates        []TablePair `json:"candidates"`
	HasStructuredData bool        `json:"has_structured_data"`
	Recommendation    string      `json:"recommendation"`
}

// ParagraphSnippet is the first-sentence paragraph-snippet candidate.
type ParagraphSnippet struct {
	FirstParagraph  string `json:"first_paragraph,omitempty"`
	LengthOptimized bool   `json:"length_optimized"`
}

// SERPFeatures collects every SERP-feature candidate for one content unit.
type SERPFeatures struct {
	FeaturedSnippet  FeaturedSnippet  `json:"featured_snippet"`
	ListSnippet      ListSnippet      `json:"list_snippet"`
	TableSnippet     TableSnippet     `json:"table_snippet"`
	ParagraphSnippet ParagraphSnippet `json:"paragraph_snippet"`
}

// TopicAuthority scores how authoritative the content is on its keywords.
type TopicAuthority struct {
	AuthorityScore  float64        `json:"authority_score"`
	DepthScore      float64        `json:"depth_score"`
	CoverageScore   float64        `json:"coverage_score"`
	KeywordMentions map[string]int `json:"keyword_mentions"`
	WordCount       int            `json:"word_count"`
	ExpertiseLevel  string         `json:"expertise_level"`
}

// ClusterTopic is one subtopic of a topic-cluster suggestion.
type ClusterTopic struct {
	Topic        string   `json:"topic"`
	Keywords     []string `json:"keywords"`
	Relationship string   `json:"relationship"`
}

// TopicCluster is a pillar-topic plus linked subtopics.
type TopicCluster struct {
	PillarTopic    string         `json:"pillar_topic"`
	PillarKeywords []string       `json:"pillar_keywords"`
	ClusterTopics  []ClusterTopic `json:"cluster_topics"`
}
