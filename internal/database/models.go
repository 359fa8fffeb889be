package database

import (
	"time"

	"github.com/google/uuid"
)

// Content is a stored content record with its optimized metadata and
// the serialized scoring result.
type Content struct {
	ID                   string         `json:"id" db:"id"`
	URL                  string         `json:"url,omitempty" db:"url"`
	Title                string         `json:"title" db:"title"`
	Content              string         `json:"content" db:"content"`
	OptimizedTitle       string         `json:"optimized_title" db:"optimized_title"`
	OptimizedDescription string         `json:"optimized_description" db:"optimized_description"`
	Keywords             []string       `json:"keywords" db:"keywords"`
	StructuredData       map[string]any `json:"structured_data,omitempty" db:"structured_data"`
	Analysis             map[string]any `json:"analysis,omitempty" db:"analysis"`
	PerformanceScore     float64        `json:"performance_score" db:"performance_score"`
	Views                int            `json:"views" db:"views"`
	CreatedAt            time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at" db:"updated_at"`
}

// SyntheticQuery is a generated search query linked to stored content.
type SyntheticQuery struct {
	ID             string    `json:"id" db:"id"`
	ContentID      string    `json:"content_id" db:"content_id"`
	Query          string    `json:"query" db:"query"`
	Response       string    `json:"response" db:"response"`
	RelevanceScore float64   `json:"relevance_score" db:"relevance_score"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Analytics aggregates stored content into dashboard figures.
type Analytics struct {
	TotalContent        int               `json:"total_content"`
	TotalQueries        int               `json:"total_queries"`
	AvgPerformanceScore float64           `json:"avg_performance_score"`
	TopPerforming       []*Content        `json:"top_performing"`
	RecentQueries       []*SyntheticQuery `json:"recent_queries"`
}

// NewContent creates a content record with a generated ID and
// timestamps set to now.
func NewContent(url, title, body string) *Content {
	now := time.Now().UTC()
	return &Content{
		ID:        uuid.New().String(),
		URL:       url,
		Title:     title,
		Content:   body,
		Keywords:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewSyntheticQuery creates a query record linked to a content ID.
func NewSyntheticQuery(contentID, query, response string, relevance float64) *SyntheticQuery {
	return &SyntheticQuery{
		ID:             uuid.New().String(),
		ContentID:      contentID,
		Query:          query,
		Response:       response,
		RelevanceScore: relevance,
		CreatedAt:      time.Now().UTC(),
	}
}
