package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Repository handles database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// SaveContent inserts a content record. Keywords, structured data, and
// the analysis result are stored as JSON text columns.
func (r *Repository) SaveContent(content *Content) error {
	keywords, err := json.Marshal(content.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}
	structured, err := json.Marshal(content.StructuredData)
	if err != nil {
		return fmt.Errorf("failed to encode structured data: %w", err)
	}
	analysis, err := json.Marshal(content.Analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	stmt, err := r.db.GetPreparedStatement("insert_content")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(
		content.ID, content.URL, content.Title, content.Content,
		content.OptimizedTitle, content.OptimizedDescription,
		string(keywords), string(structured), string(analysis),
		content.PerformanceScore, content.Views, content.CreatedAt, content.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}

	return nil
}

// GetContent fetches one content record by ID. Returns sql.ErrNoRows
// when the ID is unknown.
func (r *Repository) GetContent(id string) (*Content, error) {
	stmt, err := r.db.GetPreparedStatement("get_content")
	if err != nil {
		return nil, err
	}

	return scanContent(stmt.QueryRow(id))
}

// ListContents returns the most recent content records, newest first.
func (r *Repository) ListContents(limit int) ([]*Content, error) {
	if limit <= 0 {
		limit = 100
	}

	stmt, err := r.db.GetPreparedStatement("list_contents")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contents: %w", err)
	}
	defer rows.Close()

	contents := make([]*Content, 0)
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}

	return contents, rows.Err()
}

// DeleteContent removes a content record and its synthetic queries.
// Returns sql.ErrNoRows when the ID is unknown.
func (r *Repository) DeleteContent(id string) error {
	result, err := r.db.Exec(`DELETE FROM contents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	// Foreign keys cascade on delete, but clean up explicitly in case
	// the pragma was not applied on this connection.
	if _, err := r.db.Exec(`DELETE FROM synthetic_queries WHERE content_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete synthetic queries: %w", err)
	}

	return nil
}

// IncrementViews bumps the view counter for a content record.
func (r *Repository) IncrementViews(id string) error {
	_, err := r.db.Exec(`UPDATE contents SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// UpdatePerformanceScore updates the stored score for a content record.
func (r *Repository) UpdatePerformanceScore(id string, score float64) error {
	_, err := r.db.Exec(`UPDATE contents SET performance_score = ?, updated_at = ? WHERE id = ?`,
		score, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update performance score: %w", err)
	}
	return nil
}

// SaveSyntheticQuery inserts a generated query record.
func (r *Repository) SaveSyntheticQuery(query *SyntheticQuery) error {
	stmt, err := r.db.GetPreparedStatement("insert_query")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(query.ID, query.ContentID, query.Query, query.Response, query.RelevanceScore, query.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert synthetic query: %w", err)
	}

	return nil
}

// GetQueriesByContent returns the synthetic queries for one content
// record, newest first.
func (r *Repository) GetQueriesByContent(contentID string) ([]*SyntheticQuery, error) {
	stmt, err := r.db.GetPreparedStatement("get_queries_by_content")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query synthetic queries: %w", err)
	}
	defer rows.Close()

	queries := make([]*SyntheticQuery, 0)
	for rows.Next() {
		var q SyntheticQuery
		if err := rows.Scan(&q.ID, &q.ContentID, &q.Query, &q.Response, &q.RelevanceScore, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan synthetic query: %w", err)
		}
		queries = append(queries, &q)
	}

	return queries, rows.Err()
}

// GetAnalytics aggregates stored content into dashboard figures: totals,
// the average performance score, the top five records by score, and the
// ten most recent synthetic queries.
func (r *Repository) GetAnalytics() (*Analytics, error) {
	analytics := &Analytics{
		TopPerforming: make([]*Content, 0),
		RecentQueries: make([]*SyntheticQuery, 0),
	}

	err := r.db.QueryRow(`SELECT COUNT(*), COALESCE(AVG(performance_score), 0) FROM contents`).
		Scan(&analytics.TotalContent, &analytics.AvgPerformanceScore)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate contents: %w", err)
	}

	err = r.db.QueryRow(`SELECT COUNT(*) FROM synthetic_queries`).Scan(&analytics.TotalQueries)
	if err != nil {
		return nil, fmt.Errorf("failed to count queries: %w", err)
	}

	rows, err := r.db.Query(`SELECT id, url, title, content, optimized_title, optimized_description,
		keywords, structured_data, analysis, performance_score, views, created_at, updated_at
		FROM contents ORDER BY performance_score DESC LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("failed to query top performing: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		analytics.TopPerforming = append(analytics.TopPerforming, content)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	queryRows, err := r.db.Query(`SELECT id, content_id, query, response, relevance_score, created_at
		FROM synthetic_queries ORDER BY created_at DESC LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent queries: %w", err)
	}
	defer queryRows.Close()

	for queryRows.Next() {
		var q SyntheticQuery
		if err := queryRows.Scan(&q.ID, &q.ContentID, &q.Query, &q.Response, &q.RelevanceScore, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan synthetic query: %w", err)
		}
		analytics.RecentQueries = append(analytics.RecentQueries, &q)
	}

	return analytics, queryRows.Err()
}

// scanner abstracts sql.Row and sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

func scanContent(s scanner) (*Content, error) {
	var content Content
	var url, optTitle, optDesc sql.NullString
	var keywords, structured, analysis sql.NullString

	err := s.Scan(
		&content.ID, &url, &content.Title, &content.Content,
		&optTitle, &optDesc, &keywords, &structured, &analysis,
		&content.PerformanceScore, &content.Views, &content.CreatedAt, &content.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	content.URL = url.String
	content.OptimizedTitle = optTitle.String
	content.OptimizedDescription = optDesc.String

	content.Keywords = []string{}
	if keywords.Valid && keywords.String != "" {
		if err := json.Unmarshal([]byte(keywords.String), &content.Keywords); err != nil {
			return nil, fmt.Errorf("failed to decode keywords: %w", err)
		}
	}
	if structured.Valid && structured.String != "" && structured.String != "null" {
		if err := json.Unmarshal([]byte(structured.String), &content.StructuredData); err != nil {
			return nil, fmt.Errorf("failed to decode structured data: %w", err)
		}
	}
	if analysis.Valid && analysis.String != "" && analysis.String != "null" {
		if err := json.Unmarshal([]byte(analysis.String), &content.Analysis); err != nil {
			return nil, fmt.Errorf("failed to decode analysis: %w", err)
		}
	}

	return &content, nil
}
