package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Metadata is the generatively optimized metadata for one content unit.
type Metadata struct {
	OptimizedTitle       string   `json:"optimized_title"`
	OptimizedDescription string   `json:"optimized_description"`
	Keywords             []string `json:"keywords"`
	PerformanceScore     float64  `json:"performance_score"`
}

const metadataSystem = "You are an SEO expert. Always respond with valid JSON only."

// GenerateMetadata asks the model for an optimized title, description,
// keyword list, and performance score. On any failure it returns the
// documented fallback: the original title, the first 160 characters of
// the body as description, no keywords, and a score of 50.
func (c *Client) GenerateMetadata(ctx context.Context, title, body string) Metadata {
	fallback := Metadata{
		OptimizedTitle:       title,
		OptimizedDescription: truncateChars(body, 160),
		Keywords:             []string{},
		PerformanceScore:     50,
	}

	prompt := buildMetadataPrompt(title, body)

	raw, err := c.generate(ctx, metadataSystem, prompt, 0.7)
	if err != nil {
		slog.Warn("metadata generation failed, using fallback", "error", err)
		return fallback
	}

	var meta Metadata
	if err := decodeJSON(raw, &meta); err != nil {
		slog.Warn("metadata response unparseable, using fallback", "error", err)
		return fallback
	}

	if meta.OptimizedTitle == "" {
		meta.OptimizedTitle = fallback.OptimizedTitle
	}
	if meta.OptimizedDescription == "" {
		meta.OptimizedDescription = fallback.OptimizedDescription
	}
	if meta.Keywords == nil {
		meta.Keywords = []string{}
	}
	if meta.PerformanceScore <= 0 {
		meta.PerformanceScore = fallback.PerformanceScore
	}
	return meta
}

func buildMetadataPrompt(title, body string) string {
	var sb strings.Builder
	sb.WriteString("Analyze this content and generate SEO/LLM-optimized metadata:\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Content: %s\n\n", truncateChars(body, 2000))
	sb.WriteString(`Provide:
1. An optimized title (max 60 chars)
2. An optimized meta description (max 160 chars)
3. 5-10 relevant keywords
4. A performance score (0-100) based on content quality

Respond in JSON format:
{
  "optimized_title": "...",
  "optimized_description": "...",
  "keywords": ["..."],
  "performance_score": 85
}`)
	return sb.String()
}
