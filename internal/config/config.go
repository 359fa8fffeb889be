package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds process-level settings loaded from the environment.
type Config struct {
	Port         string
	DataDir      string
	GeminiAPIKey string
	GeminiModel  string
	CORSOrigins  []string

	// Requests per second allowed per client IP, with burst headroom.
	RateLimitRPS   float64
	RateLimitBurst int

	Thresholds Thresholds
}

// Thresholds collects every scoring constant in one place. The values are
// empirically chosen and must not be re-tuned silently; overriding them is
// an explicit operator decision via environment variables.
type Thresholds struct {
	// Traffic prediction
	HighVolumeThreshold   int
	MediumVolumeThreshold int

	// Content length
	MinWordCount     int
	OptimalWordCount int

	// Readability target band
	ReadabilityOptimalLow  float64
	ReadabilityOptimalHigh float64

	// Freshness ladder (days)
	FreshnessVeryFresh int
	FreshnessFresh     int
	FreshnessRecent    int
	FreshnessModerate  int
	FreshnessAging     int

	// Input bounds
	MaxEntityChars   int
	MaxIntentChars   int
	MaxContentLength int
}

// DefaultThresholds returns the scoring constants used when no env overrides are set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighVolumeThreshold:    1000,
		MediumVolumeThreshold:  500,
		MinWordCount:           300,
		OptimalWordCount:       1500,
		ReadabilityOptimalLow:  60,
		ReadabilityOptimalHigh: 80,
		FreshnessVeryFresh:     7,
		FreshnessFresh:         30,
		FreshnessRecent:        90,
		FreshnessModerate:      180,
		FreshnessAging:         365,
		MaxEntityChars:         5000,
		MaxIntentChars:         500,
		MaxContentLength:       10000,
	}
}

// Load reads configuration from the environment with defaults.
func Load() Config {
	t := DefaultThresholds()
	t.HighVolumeThreshold = getEnvInt("HIGH_VOLUME_THRESHOLD", t.HighVolumeThreshold)
	t.MediumVolumeThreshold = getEnvInt("MEDIUM_VOLUME_THRESHOLD", t.MediumVolumeThreshold)
	t.MinWordCount = getEnvInt("MIN_WORD_COUNT", t.MinWordCount)
	t.OptimalWordCount = getEnvInt("OPTIMAL_WORD_COUNT", t.OptimalWordCount)
	t.MaxContentLength = getEnvInt("MAX_CONTENT_LENGTH", t.MaxContentLength)

	return Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		DataDir:        getEnvOrDefault("DATA_DIR", "./data"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		CORSOrigins:    strings.Split(getEnvOrDefault("CORS_ORIGINS", "*"), ","),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		Thresholds:     t,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
