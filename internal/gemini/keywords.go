package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/trafficwizard/traffic-wizard/internal/analysis"
)

const (
	analystSystem    = "You are an SEO analyst. Always respond with valid JSON only."
	semanticSystem   = "You are an SEO expert specializing in semantic search. Always respond with valid JSON only."
	strategistSystem = "You are a content strategist. Always respond with valid JSON only."
	querySystem      = "You are a search query expert. Always respond with valid JSON only."
)

// ExpectedKeywords returns the keyword set comprehensive content on
// this topic should cover. Errors propagate; the gap analyzer treats
// a failed call as an empty competitor vocabulary.
func (c *Client) ExpectedKeywords(ctx context.Context, body string, primary []string) ([]string, error) {
	var sb strings.Builder
	sb.WriteString("Based on this content topic, list 15 keywords that comprehensive content should include.\n\n")
	fmt.Fprintf(&sb, "Primary Keywords: %s\n", strings.Join(headN(primary, 3), ", "))
	fmt.Fprintf(&sb, "Content Preview: %s\n\n", truncateChars(body, 800))
	sb.WriteString(`Provide keywords that:
1. Related concepts and terms
2. Industry terminology
3. Related questions users ask
4. Supporting topics

Respond with a JSON array:
["keyword1", "keyword2", ...]`)

	raw, err := c.generate(ctx, analystSystem, sb.String(), 0.7)
	if err != nil {
		return nil, err
	}

	var keywords []string
	if err := decodeJSON(raw, &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// LSIKeywords returns semantically related terms that give search
// engines topical context, distinct from plain synonyms.
func (c *Client) LSIKeywords(ctx context.Context, body string, primary []string) ([]string, error) {
	var sb strings.Builder
	sb.WriteString("Analyze this content and generate 10 LSI (Latent Semantic Indexing) keywords.\n")
	sb.WriteString("These should be semantically related terms that provide context, NOT just synonyms.\n\n")
	fmt.Fprintf(&sb, "Primary Keywords: %s\n", strings.Join(headN(primary, 5), ", "))
	fmt.Fprintf(&sb, "Content: %s\n\n", truncateChars(body, 1500))
	sb.WriteString(`Provide keywords that:
1. Are semantically related to the topic
2. Help search engines understand context
3. Are natural variations users might search
4. Include related concepts and entities

Respond with a JSON array of strings:
["keyword1", "keyword2", ...]`)

	raw, err := c.generate(ctx, semanticSystem, sb.String(), 0.7)
	if err != nil {
		return nil, err
	}

	var keywords []string
	if err := decodeJSON(raw, &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// TopicClusters asks for a pillar-and-cluster content strategy built
// around the given keywords.
func (c *Client) TopicClusters(ctx context.Context, keywords []string, body string) (analysis.TopicCluster, error) {
	var sb strings.Builder
	sb.WriteString("Analyze these keywords and content, then suggest a topic cluster strategy.\n\n")
	fmt.Fprintf(&sb, "Keywords: %s\n", strings.Join(headN(keywords, 10), ", "))
	fmt.Fprintf(&sb, "Content: %s\n\n", truncateChars(body, 1000))
	sb.WriteString(`Provide:
1. A main pillar topic
2. 5-7 cluster topics (subtopics to create separate content for)
3. How they should link together

Respond in JSON format:
{
  "pillar_topic": "Main comprehensive topic",
  "pillar_keywords": ["keyword1", "keyword2"],
  "cluster_topics": [
    {
      "topic": "Subtopic 1",
      "keywords": ["kw1", "kw2"],
      "relationship": "How it relates to pillar"
    }
  ]
}`)

	raw, err := c.generate(ctx, strategistSystem, sb.String(), 0.7)
	if err != nil {
		return analysis.TopicCluster{}, err
	}

	var cluster analysis.TopicCluster
	if err := decodeJSON(raw, &cluster); err != nil {
		return analysis.TopicCluster{}, err
	}
	return cluster, nil
}

// SyntheticQueries generates search queries a user might ask an LLM
// that this content would answer. A failed call returns an empty list
// with the error; callers persist whatever queries they get.
func (c *Client) SyntheticQueries(ctx context.Context, title, body string) ([]string, error) {
	var sb strings.Builder
	sb.WriteString("Generate 5 diverse search queries that users might ask an LLM that would make this content relevant:\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Content: %s\n\n", truncateChars(body, 1000))
	sb.WriteString(`Provide queries as a JSON array:
["query1", "query2", "query3", "query4", "query5"]`)

	raw, err := c.generate(ctx, querySystem, sb.String(), 0.8)
	if err != nil {
		return nil, err
	}

	var queries []string
	if err := decodeJSON(raw, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}
