package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"labelscan/internal/analyzer"
	"labelscan/internal/config"
	"labelscan/internal/handler"
	ocrnoop "labelscan/internal/ocr/noop"
	ocrremote "labelscan/internal/ocr/remote"
	"labelscan/internal/port"
	"labelscan/internal/refdata"
	"labelscan/internal/repository/postgres"
	"labelscan/internal/research"
	_ "labelscan/internal/research/openai"
	"labelscan/internal/router"
	"labelscan/internal/service"
	s3storage "labelscan/internal/storage/s3"
	trnoop "labelscan/internal/translation/noop"
	trremote "labelscan/internal/translation/remote"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Load the ingredient reference database. A load error is fatal; an
	// empty table falls back to the built-in reference set.
	refCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	refs, err := refdata.Load(refCtx, postgres.NewIngredientRepo(db))
	cancel()
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}
	log.Printf("reference database loaded: %d ingredients", refs.Len())

	// Initialize repositories
	analysisRepo := postgres.NewAnalysisRepo(db)

	// Initialize storage
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	} else {
		log.Println("S3 storage disabled; label images will not be archived")
	}

	// Initialize the knowledge researcher and its optional cache
	researcher, err := research.NewResearcher(&cfg.Researcher)
	if err != nil {
		return fmt.Errorf("failed to initialize researcher: %w", err)
	}
	if cfg.Redis.Enabled {
		cache, err := research.NewRedisCache(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer cache.Close()
		researcher = research.NewCachedResearcher(researcher, cache)
	}
	gatherer := research.NewGatherer(researcher, cfg.Researcher.MaxInFlight, cfg.Researcher.Timeout())

	// Initialize OCR and translation providers
	var ocrProvider port.OCRProvider
	switch cfg.OCR.Provider {
	case "remote":
		ocrProvider = ocrremote.NewProvider(&cfg.OCR)
	default:
		ocrProvider = ocrnoop.NewNoopProvider()
	}

	var translator port.TranslationProvider
	switch cfg.Translation.Provider {
	case "remote":
		translator = trremote.NewTranslator(&cfg.Translation)
	default:
		translator = trnoop.NewNoopTranslator()
	}

	// Initialize services
	engine := analyzer.New(refs, analyzer.Options{
		FuzzyThreshold: cfg.Analysis.FuzzyThreshold,
		MinConfidence:  cfg.Analysis.MinConfidence,
	})
	analysisSvc := service.NewAnalysisService(
		engine, gatherer, translator, ocrProvider, analysisRepo, storage, &cfg.S3)

	// Initialize handlers
	analyzeH := handler.NewAnalyzeHandler(analysisSvc)
	analysisH := handler.NewAnalysisHandler(analysisSvc)
	healthH := handler.NewHealthHandler(db, refs)

	// Setup router
	r := router.Setup(cfg, analyzeH, analysisH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
