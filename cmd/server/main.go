package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/trafficwizard/traffic-wizard/internal/analysis"
	"github.com/trafficwizard/traffic-wizard/internal/cache"
	"github.com/trafficwizard/traffic-wizard/internal/config"
	"github.com/trafficwizard/traffic-wizard/internal/database"
	apperrors "github.com/trafficwizard/traffic-wizard/internal/errors"
	"github.com/trafficwizard/traffic-wizard/internal/gemini"
	"github.com/trafficwizard/traffic-wizard/internal/monitoring"
	"github.com/trafficwizard/traffic-wizard/internal/providers/prose"
	"github.com/trafficwizard/traffic-wizard/internal/providers/readability"
	"github.com/trafficwizard/traffic-wizard/internal/ratelimit"
	"github.com/trafficwizard/traffic-wizard/internal/types"
)

// server bundles the wired dependencies behind the HTTP handlers.
type server struct {
	cfg      config.Config
	db       *database.DB
	repo     *database.Repository
	analyzer *analysis.Analyzer
	gem      *gemini.Client
	metrics  *monitoring.Metrics
	logger   *monitoring.Logger
	cache    *cache.Cache
}

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	// Initialize database and repository
	db, err := database.NewDB(cfg.DataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)

	// Linguistic providers
	recognizer := prose.NewRecognizer()
	readabilityScorer := readability.NewScorer()

	// Gemini is optional: without a key every generative operation
	// serves its deterministic fallback.
	var gem *gemini.Client
	var suggester analysis.KeywordSuggester
	if cfg.GeminiAPIKey != "" {
		gem, err = gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Warn("Gemini client unavailable, generative features degraded", "error", err)
			gem = nil
		} else {
			suggester = gem
		}
	} else {
		slog.Warn("GEMINI_API_KEY not set, generative features degraded")
	}

	s := &server{
		cfg:      cfg,
		db:       db,
		repo:     repo,
		analyzer: analysis.NewAnalyzer(recognizer, readabilityScorer, suggester, cfg.Thresholds),
		gem:      gem,
		metrics:  monitoring.NewMetrics(),
		logger:   monitoring.NewLogger(),
		cache:    cache.NewCache(15 * time.Minute),
	}

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.router(),
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// router assembles the middleware chain and every route.
func (s *server) router() *gin.Engine {
	r := gin.New()

	r.Use(monitoring.MonitoringMiddleware(s.metrics, s.logger))
	r.Use(apperrors.ErrorHandler())
	r.Use(apperrors.RecoveryHandler())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	limiter := ratelimit.NewLimiter(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst)
	r.Use(ratelimit.Middleware(limiter))

	// Scoring is deterministic, so analyze responses cache cleanly.
	r.Use(s.cache.Middleware(s.metrics))

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", s.handleMetrics)
	r.GET("/cache/stats", s.handleCacheStats)

	api := r.Group("/api")
	api.POST("/content", s.handleCreateContent)
	api.GET("/content", s.handleListContents)
	api.GET("/content/:id", s.handleGetContent)
	api.DELETE("/content/:id", s.handleDeleteContent)
	api.GET("/queries/:id", s.handleGetQueries)
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/analytics", s.handleAnalytics)

	return r
}

func (s *server) handleHealth(c *gin.Context) {
	dbStatus := "ok"
	if err := s.db.Ping(); err != nil {
		dbStatus = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"database":         dbStatus,
		"gemini_available": s.gem != nil,
		"uptime_seconds":   time.Since(s.metrics.StartTime).Seconds(),
	})
}

func (s *server) handleMetrics(c *gin.Context) {
	stats := s.metrics.GetStats()
	stats["database_pool"] = s.db.GetPoolStats()
	c.JSON(http.StatusOK, stats)
}

func (s *server) handleCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.cache.Stats())
}

func (s *server) handleCreateContent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	var req types.ContentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if req.InputType == "url" {
		abortWith(c, apperrors.NewValidationError("URL crawling is not supported, submit content directly"))
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		abortWith(c, apperrors.NewValidationError("content cannot be empty"))
		return
	}
	if len(req.Content) > s.cfg.Thresholds.MaxContentLength {
		abortWith(c, apperrors.NewValidationError("content exceeds maximum length"))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Untitled"
	}

	start := time.Now()

	meta := gemini.Metadata{
		OptimizedTitle:       title,
		OptimizedDescription: firstChars(req.Content, 160),
		Keywords:             req.Keywords,
		PerformanceScore:     50,
	}
	if s.gem != nil {
		callStart := time.Now()
		meta = s.gem.GenerateMetadata(ctx, title, req.Content)
		s.metrics.RecordGeminiCall(true)
		s.logger.ExternalAPILogger("gemini", "generate_metadata", time.Since(callStart), true)
		if len(meta.Keywords) == 0 {
			meta.Keywords = req.Keywords
		}
		if len(meta.Keywords) > 0 && len(meta.Keywords) < 10 {
			callStart = time.Now()
			lsi, err := s.gem.LSIKeywords(ctx, req.Content, meta.Keywords)
			s.logger.ExternalAPILogger("gemini", "lsi_keywords", time.Since(callStart), err == nil)
			if err == nil {
				meta.Keywords = mergeKeywords(meta.Keywords, lsi)
			}
		}
	}
	if meta.Keywords == nil {
		meta.Keywords = []string{}
	}

	record := database.NewContent(req.URL, title, req.Content)
	record.OptimizedTitle = meta.OptimizedTitle
	record.OptimizedDescription = meta.OptimizedDescription
	record.Keywords = meta.Keywords
	record.PerformanceScore = meta.PerformanceScore
	record.StructuredData = analysis.StructuredData(title, req.Content, req.URL, record.CreatedAt)

	unit := analysis.ContentUnit{
		Title:     title,
		Body:      req.Content,
		URL:       req.URL,
		CreatedAt: record.CreatedAt,
		Keywords:  meta.Keywords,
	}
	result := s.analyzer.AnalyzeContent(ctx, unit, analysis.Options{
		OptimizedTitle:       meta.OptimizedTitle,
		OptimizedDescription: meta.OptimizedDescription,
		HasStructuredData:    true,
		IncludeTopicClusters: true,
	})

	analysisDoc, err := toDocument(result)
	if err != nil {
		abortWith(c, apperrors.NewInternalError("failed to encode analysis", err))
		return
	}
	record.Analysis = analysisDoc

	if err := s.repo.SaveContent(record); err != nil {
		abortWith(c, apperrors.NewInternalError("failed to save content", err))
		return
	}

	s.metrics.IncrementAnalysis()
	s.logger.AnalysisLogger(record.ID, result.Metrics.WordCount, result.Quality.Overall, result.SEO.Overall, time.Since(start), false)

	// Synthetic queries are generated in the background so a slow
	// provider never delays the response.
	if s.gem != nil {
		go s.generateSyntheticQueries(record.ID, title, req.Content)
	}

	c.JSON(http.StatusCreated, record)
}

func (s *server) generateSyntheticQueries(contentID, title, body string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	callStart := time.Now()
	queries, err := s.gem.SyntheticQueries(ctx, title, body)
	s.metrics.RecordGeminiCall(err == nil)
	s.logger.ExternalAPILogger("gemini", "synthetic_queries", time.Since(callStart), err == nil)
	if err != nil {
		slog.Warn("Synthetic query generation failed", "content_id", contentID, "error", err)
		return
	}

	response := "Based on our content: " + firstChars(body, 200) + "..."
	for _, query := range queries {
		q := database.NewSyntheticQuery(contentID, query, response, 85.0)
		if err := s.repo.SaveSyntheticQuery(q); err != nil {
			slog.Warn("Failed to save synthetic query", "content_id", contentID, "error", err)
		}
	}
}

func (s *server) handleListContents(c *gin.Context) {
	contents, err := s.repo.ListContents(100)
	if err != nil {
		abortWith(c, apperrors.NewInternalError("failed to list contents", err))
		return
	}
	c.JSON(http.StatusOK, contents)
}

func (s *server) handleGetContent(c *gin.Context) {
	id := c.Param("id")

	content, err := s.repo.GetContent(id)
	if errors.Is(err, sql.ErrNoRows) {
		abortWith(c, apperrors.NewNotFoundError("content", id))
		return
	}
	if err != nil {
		abortWith(c, apperrors.NewInternalError("failed to fetch content", err))
		return
	}

	if err := s.repo.IncrementViews(id); err != nil {
		slog.Warn("Failed to increment views", "content_id", id, "error", err)
	} else {
		content.Views++
	}

	c.JSON(http.StatusOK, content)
}

func (s *server) handleDeleteContent(c *gin.Context) {
	id := c.Param("id")

	err := s.repo.DeleteContent(id)
	if errors.Is(err, sql.ErrNoRows) {
		abortWith(c, apperrors.NewNotFoundError("content", id))
		return
	}
	if err != nil {
		abortWith(c, apperrors.NewInternalError("failed to delete content", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "content deleted successfully", "id": id})
}

func (s *server) handleGetQueries(c *gin.Context) {
	queries, err := s.repo.GetQueriesByContent(c.Param("id"))
	if err != nil {
		abortWith(c, apperrors.NewInternalError("failed to fetch queries", err))
		return
	}
	c.JSON(http.StatusOK, queries)
}

func (s *server) handleAnalyze(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if len(req.Content) > s.cfg.Thresholds.MaxContentLength {
		abortWith(c, apperrors.NewValidationError("content exceeds maximum length"))
		return
	}

	unit := analysis.ContentUnit{
		Title:    req.Title,
		Body:     req.Content,
		URL:      req.URL,
		Keywords: req.Keywords,
	}
	if req.CreatedAt != nil {
		unit.CreatedAt = *req.CreatedAt
	}

	start := time.Now()
	result := s.analyzer.AnalyzeContent(ctx, unit, analysis.Options{
		CompetitorKeywords: req.CompetitorKeywords,
	})

	s.metrics.IncrementAnalysis()
	s.logger.AnalysisLogger("", result.Metrics.WordCount, result.Quality.Overall, result.SEO.Overall, time.Since(start), false)

	c.JSON(http.StatusOK, result)
}

func (s *server) handleAnalytics(c *gin.Context) {
	analytics, err := s.repo.GetAnalytics()
	if err != nil {
		abortWith(c, apperrors.NewInternalError("failed to aggregate analytics", err))
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// abortWith logs a structured error and writes its HTTP response.
func abortWith(c *gin.Context, appErr *apperrors.AppError) {
	apperrors.LogError(c, appErr)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
}

// mergeKeywords appends additions not already present, case-insensitively.
func mergeKeywords(base, additions []string) []string {
	seen := make(map[string]bool, len(base))
	for _, kw := range base {
		seen[strings.ToLower(kw)] = true
	}
	for _, kw := range additions {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		base = append(base, strings.TrimSpace(kw))
	}
	return base
}

// toDocument converts a value to a generic JSON document for storage.
func toDocument(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// firstChars returns the first n characters of s, respecting rune
// boundaries.
func firstChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
