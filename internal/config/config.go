package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string

	// Dataset
	DatasetPath   string
	ExtractorMode string
	BrandsPath    string
	SourcesPath   string
	CitationSeed  int64

	// JWT / Auth
	AccessSecret string
	PasswordHash string

	// Optional integrations
	PostgresURL string
	OpenAIKey   string

	// Logging
	LogLevel  string
	LogFormat string
}

const (
	ExtractorMarkup  = "markup"
	ExtractorLexicon = "lexicon"
)

// Load reads environment variables and validates required ones.
func Load() (*Config, error) {
	// Load .env file if it exists (optional)
	_ = godotenv.Load() // ignore error if no file; env vars can come from the system

	var missing []string

	getRequired := func(key string) string {
		val := os.Getenv(key)
		if val == "" {
			missing = append(missing, key)
		}
		return val
	}

	getOptional := func(key, def string) string {
		if val := os.Getenv(key); val != "" {
			return val
		}
		return def
	}

	cfg := &Config{
		// Required
		Port:         getRequired("PORT"),
		DatasetPath:  getRequired("DATASET_PATH"),
		AccessSecret: getRequired("ACCESS_SECRET"),
		PasswordHash: getRequired("DASHBOARD_PASSWORD_HASH"),

		// Optional
		ExtractorMode: getOptional("EXTRACTOR_MODE", ExtractorMarkup),
		BrandsPath:    getOptional("BRANDS_PATH", ""),
		SourcesPath:   getOptional("SOURCES_PATH", ""),
		PostgresURL:   getOptional("POSTGRES_URL", ""),
		OpenAIKey:     getOptional("OPENAI_API_KEY", ""),
		LogLevel:      getOptional("LOG_LEVEL", "info"),
		LogFormat:     getOptional("LOG_FORMAT", "console"),
	}

	if len(missing) > 0 {
		return nil, errors.New("missing required environment variables: " + fmt.Sprint(missing))
	}

	if seed := os.Getenv("CITATION_SEED"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CITATION_SEED: %w", err)
		}
		cfg.CitationSeed = n
	}

	switch cfg.ExtractorMode {
	case ExtractorMarkup:
	case ExtractorLexicon:
		if cfg.BrandsPath == "" {
			return nil, errors.New("EXTRACTOR_MODE=lexicon requires BRANDS_PATH")
		}
	default:
		return nil, fmt.Errorf("unknown EXTRACTOR_MODE %q", cfg.ExtractorMode)
	}

	return cfg, nil
}
