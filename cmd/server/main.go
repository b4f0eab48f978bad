package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/cdipaolo/sentiment"
	"go.uber.org/zap"

	"brandintel/internal/analytics"
	"brandintel/internal/config"
	"brandintel/internal/dataset"
	"brandintel/internal/extract"
	"brandintel/internal/handler"
	"brandintel/internal/middleware"
	"brandintel/internal/repository"
	"brandintel/internal/service"
	"brandintel/pkg/logger"
)

func main() {
	// load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// dataset: Postgres when configured, file otherwise
	var (
		records []dataset.ResponseRecord
		repo    *repository.DatasetRepo
	)
	if cfg.PostgresURL != "" {
		pool, err := config.ConnectToPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			logger.Fatal("postgres connect failed", zap.Error(err))
		}
		defer config.ClosePostgres()
		repo = repository.NewDatasetRepo(pool)

		records, err = repo.LoadRecords(ctx)
		if err != nil {
			logger.Fatal("postgres dataset load failed", zap.Error(err))
		}
		if len(records) == 0 {
			logger.Warn("postgres dataset is empty, falling back to file", zap.String("path", cfg.DatasetPath))
		}
	}
	if len(records) == 0 {
		records, err = dataset.Load(cfg.DatasetPath)
		if err != nil {
			logger.Fatal("dataset load failed", zap.Error(err))
		}
	}

	// citation enrichment for records without a source_citation column
	if cfg.SourcesPath != "" {
		sources, err := config.LoadSources(cfg.SourcesPath)
		if err != nil {
			logger.Fatal("citation sources load failed", zap.Error(err))
		}
		seed := cfg.CitationSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		dataset.AssignCitations(records, sources, rand.New(rand.NewSource(seed)))
	}

	// extraction strategy
	var ex extract.Extractor
	switch cfg.ExtractorMode {
	case config.ExtractorMarkup:
		ex = extract.NewMarkupExtractor()
	case config.ExtractorLexicon:
		brands, err := config.LoadBrands(cfg.BrandsPath)
		if err != nil {
			logger.Fatal("brand lexicon load failed", zap.Error(err))
		}
		ex = extract.NewLexiconExtractor(brands)
	}

	mentions, err := analytics.Expand(records, ex)
	if err != nil {
		// extraction/dataset mismatch; nothing downstream can be trusted
		logger.Fatal("mention expansion failed", zap.Error(err), zap.String("mode", cfg.ExtractorMode))
	}
	logger.Info("dataset ready",
		zap.Int("responses", len(records)),
		zap.Int("mentions", len(mentions)),
		zap.String("extractor", cfg.ExtractorMode),
	)

	// sentiment model init
	model, err := sentiment.Restore()
	if err != nil {
		logger.Warn("sentiment model unavailable, sentiment scores disabled", zap.Error(err))
	} else {
		analytics.SetSentimentModel(&model)
	}

	// services
	insightSvc := service.NewInsightService(records, mentions)
	var simSvc *service.SimulatorService
	if cfg.OpenAIKey != "" {
		simSvc = service.NewSimulatorService(repo, cfg.OpenAIKey)
	}

	// handlers
	h := handler.NewHandler(insightSvc, simSvc, cfg)

	// routes
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	corsMux := middleware.CORS(mux)

	addr := "0.0.0.0:" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: corsMux,
	}

	logger.Info("listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
