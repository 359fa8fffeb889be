// Package gemini implements the generative enrichment operations on
// top of Google Gemini. Every operation degrades to a documented
// fallback when the model is unreachable or returns unparseable
// output, so callers never block on the provider.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/trafficwizard/traffic-wizard/internal/analysis"
	"github.com/trafficwizard/traffic-wizard/internal/errors"
	"github.com/trafficwizard/traffic-wizard/internal/resilience"
)

// Ensure Client implements analysis.KeywordSuggester at compile time.
var _ analysis.KeywordSuggester = (*Client)(nil)

// Client wraps the Gemini API behind a retry and circuit-breaker guard.
type Client struct {
	client *genai.Client
	model  string
	guard  *resilience.Guard
}

// NewClient creates a Gemini client. The API key is required; the model
// name defaults to gemini-2.5-flash when empty.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.NewConfigurationError("gemini API key required", nil)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.NewConfigurationError("creating gemini client", err)
	}

	return &Client{
		client: client,
		model:  model,
		guard: resilience.NewGuard(
			resilience.CircuitBreakerConfig{
				FailureThreshold: 5,
				RecoveryTimeout:  30 * time.Second,
			},
			resilience.DefaultRetryConfig(),
		),
	}, nil
}

// generate issues one guarded GenerateContent call and returns the
// model's text response.
func (c *Client) generate(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	var text string
	err := c.guard.Do(ctx, func() error {
		result, err := c.client.Models.GenerateContent(ctx, c.model,
			[]*genai.Content{{
				Parts: []*genai.Part{{Text: prompt}},
			}},
			buildConfig(system, temperature),
		)
		if err != nil {
			return errors.NewExternalAPIError("gemini", err)
		}
		if result == nil {
			return errors.NewExternalAPIError("gemini", fmt.Errorf("nil result"))
		}
		text = result.Text()
		return nil
	})
	return text, err
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func buildConfig(system string, temperature float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature: &temperature,
	}
}

// decodeJSON parses a model response as JSON, tolerating the markdown
// code fences Gemini sometimes wraps around structured output.
func decodeJSON(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), v); err != nil {
		return fmt.Errorf("decoding gemini response: %w", err)
	}
	return nil
}

// truncateChars bounds prompt context to limit characters, respecting
// rune boundaries.
func truncateChars(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// headN returns at most n elements of list.
func headN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
