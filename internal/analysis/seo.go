package analysis

import (
	"fmt"
	"time"
)

const seoSubScoreGood = 15 // sub-scores below this trigger a recommendation

// SEOSignals carries the inputs of the five-pillar SEO score. Title and
// Description should be the optimized variants when available.
type SEOSignals struct {
	Title             string
	Description       string
	KeywordCount      int
	Quality           *QualityScore
	HasStructuredData bool
	HasOpenGraphTags  bool
	HasFAQs           bool
	HasEntities       bool
}

// ScoreSEO computes the five-pillar SEO composite. Each sub-score is capped
// at 20, so the overall sum stays in [0,100].
func ScoreSEO(signals SEOSignals) SEOScore {
	var b SEOBreakdown

	switch titleLen := len(signals.Title); {
	case titleLen >= 50 && titleLen <= 60:
		b.Title = 20
	case titleLen >= 40 && titleLen <= 70:
		b.Title = 15
	default:
		b.Title = 10
	}

	switch descLen := len(signals.Description); {
	case descLen >= 150 && descLen <= 160:
		b.Description = 20
	case descLen >= 130 && descLen <= 170:
		b.Description = 15
	default:
		b.Description = 10
	}

	switch {
	case signals.KeywordCount >= 5:
		b.Keywords = 20
	case signals.KeywordCount >= 3:
		b.Keywords = 15
	default:
		b.Keywords = 10
	}

	if signals.Quality != nil {
		b.ContentQuality = int(signals.Quality.Overall / 5)
		if b.ContentQuality > 20 {
			b.ContentQuality = 20
		}
	} else {
		b.ContentQuality = 10
	}

	if signals.HasStructuredData {
		b.Technical += 5
	}
	if signals.HasOpenGraphTags {
		b.Technical += 5
	}
	if signals.HasFAQs {
		b.Technical += 5
	}
	if signals.HasEntities {
		b.Technical += 5
	}

	overall := b.Title + b.Description + b.Keywords + b.ContentQuality + b.Technical
	return SEOScore{
		Overall:         overall,
		Breakdown:       b,
		Grade:           seoGrade(overall),
		Recommendations: seoRecommendations(b),
	}
}

func seoGrade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "B+"
	case score >= 75:
		return "B"
	case score >= 70:
		return "C+"
	case score >= 65:
		return "C"
	default:
		return "D"
	}
}

func seoRecommendations(b SEOBreakdown) []string {
	var recs []string
	if b.Title < seoSubScoreGood {
		recs = append(recs, "Optimize title length (50-60 characters)")
	}
	if b.Description < seoSubScoreGood {
		recs = append(recs, "Improve meta description (150-160 characters)")
	}
	if b.Keywords < seoSubScoreGood {
		recs = append(recs, "Add more relevant keywords (5+ recommended)")
	}
	if b.ContentQuality < seoSubScoreGood {
		recs = append(recs, "Enhance content quality with more depth and examples")
	}
	if b.Technical < seoSubScoreGood {
		recs = append(recs, "Add structured data, Open Graph tags, and FAQs")
	}
	return recs
}

// MetaPreview shows how the content would render in search results and on
// social cards, with character-count optimality flags.
type MetaPreview struct {
	Google          GooglePreview   `json:"google"`
	Social          SocialPreview   `json:"social"`
	CharacterCounts CharacterCounts `json:"character_counts"`
}

type GooglePreview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URLDisplay  string `json:"url_display"`
	PreviewText string `json:"preview_text"`
}

type SocialPreview struct {
	OGTitle            string `json:"og_title"`
	OGDescription      string `json:"og_description"`
	TwitterTitle       string `json:"twitter_title"`
	TwitterDescription string `json:"twitter_description"`
}

type CharacterCounts struct {
	TitleLength        int  `json:"title_length"`
	TitleOptimal       bool `json:"title_optimal"`
	DescriptionLength  int  `json:"description_length"`
	DescriptionOptimal bool `json:"description_optimal"`
}

// BuildMetaPreview renders search and social-card previews with the
// platform-specific truncations.
func BuildMetaPreview(title, description, url string) MetaPreview {
	display := url
	if display == "" {
		display = "example.com"
	}
	return MetaPreview{
		Google: GooglePreview{
			Title:       ellipsize(title, 60),
			Description: ellipsize(description, 160),
			URLDisplay:  display,
			PreviewText: truncate(description, 160),
		},
		Social: SocialPreview{
			OGTitle:            ellipsize(title, 95),
			OGDescription:      ellipsize(description, 200),
			TwitterTitle:       ellipsize(title, 70),
			TwitterDescription: ellipsize(description, 200),
		},
		CharacterCounts: CharacterCounts{
			TitleLength:        len(title),
			TitleOptimal:       len(title) >= 50 && len(title) <= 60,
			DescriptionLength:  len(description),
			DescriptionOptimal: len(description) >= 150 && len(description) <= 160,
		},
	}
}

func ellipsize(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return truncate(text, limit) + "..."
}

// CanonicalTags renders canonical URL markup to prevent duplicate content.
func CanonicalTags(url, contentID string) map[string]string {
	canonical := url
	if canonical == "" {
		canonical = fmt.Sprintf("https://yoursite.com/content/%s", contentID)
	}
	return map[string]string{
		"canonical_url": canonical,
		"html_tag":      fmt.Sprintf(`<link rel="canonical" href="%s" />`, canonical),
		"http_header":   fmt.Sprintf(`Link: <%s>; rel="canonical"`, canonical),
	}
}

// RobotsMeta renders robots meta tags.
func RobotsMeta(index, follow bool) map[string]string {
	indexVal := "index"
	if !index {
		indexVal = "noindex"
	}
	followVal := "follow"
	if !follow {
		followVal = "nofollow"
	}
	return map[string]string{
		"meta_tag":     fmt.Sprintf(`<meta name="robots" content="%s, %s" />`, indexVal, followVal),
		"x_robots_tag": fmt.Sprintf("X-Robots-Tag: %s, %s", indexVal, followVal),
	}
}

// StructuredData builds a schema.org Article object for the content.
func StructuredData(title, body, url string, publishedAt time.Time) map[string]any {
	return map[string]any{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      title,
		"articleBody":   truncate(body, 500),
		"url":           url,
		"datePublished": publishedAt.UTC().Format(time.RFC3339),
		"author": map[string]any{
			"@type": "Person",
			"name":  "Content Creator",
		},
	}
}
