package types

import "time"

// ContentCreateRequest is the request body for creating content
type ContentCreateRequest struct {
	InputType string   `json:"input_type"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	URL       string   `json:"url,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
}

// AnalyzeRequest is the request body for a standalone scoring pass
type AnalyzeRequest struct {
	Title              string     `json:"title"`
	Content            string     `json:"content"`
	URL                string     `json:"url,omitempty"`
	Keywords           []string   `json:"keywords,omitempty"`
	CompetitorKeywords []string   `json:"competitor_keywords,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
}
