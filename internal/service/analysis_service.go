package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"labelscan/internal/analyzer"
	"labelscan/internal/config"
	"labelscan/internal/domain"
	"labelscan/internal/port"
	"labelscan/internal/research"
)

const defaultMaxImageSizeMB = 16

// AnalyzeTextInput is the DTO for analyzing raw ingredient text.
type AnalyzeTextInput struct {
	Text      string
	Allergies []string
}

// AnalyzeImageInput is the DTO for analyzing a label image.
type AnalyzeImageInput struct {
	ImageBytes  []byte
	ContentType string
	Filename    string
	Allergies   []string
}

// AnalysisService defines the ingredient analysis contract.
type AnalysisService interface {
	AnalyzeText(ctx context.Context, input *AnalyzeTextInput) (*domain.Analysis, error)
	AnalyzeImage(ctx context.Context, input *AnalyzeImageInput) (*domain.Analysis, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Analysis, error)
	List(ctx context.Context, offset, limit int) ([]domain.Analysis, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type analysisService struct {
	engine     *analyzer.Engine
	gatherer   *research.Gatherer
	translator port.TranslationProvider
	ocr        port.OCRProvider
	repo       port.AnalysisRepository
	storage    port.ObjectStorage
	s3cfg      *config.S3Config
}

// NewAnalysisService creates a new AnalysisService implementation. The
// repository and storage may be nil; analyses are then served without
// persistence and images without archival.
func NewAnalysisService(
	engine *analyzer.Engine,
	gatherer *research.Gatherer,
	translator port.TranslationProvider,
	ocrProvider port.OCRProvider,
	repo port.AnalysisRepository,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) AnalysisService {
	return &analysisService{
		engine:     engine,
		gatherer:   gatherer,
		translator: translator,
		ocr:        ocrProvider,
		repo:       repo,
		storage:    storage,
		s3cfg:      s3cfg,
	}
}

func (s *analysisService) AnalyzeText(ctx context.Context, input *AnalyzeTextInput) (*domain.Analysis, error) {
	text, language := s.translate(ctx, input.Text)

	result := s.runPipeline(ctx, text, domain.NewUserProfile(input.Allergies))
	noteTranslation(result, language)

	analysis := &domain.Analysis{
		ID:               uuid.New(),
		Source:           domain.SourceText,
		RawText:          input.Text,
		DetectedLanguage: language,
		HealthScore:      result.HealthScore,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.finish(ctx, analysis, result); err != nil {
		return nil, err
	}
	return analysis, nil
}

func (s *analysisService) AnalyzeImage(ctx context.Context, input *AnalyzeImageInput) (*domain.Analysis, error) {
	if s.ocr == nil {
		return nil, domain.ErrImageAnalysisOff
	}
	imageType, err := classifyImage(input.ContentType, input.Filename)
	if err != nil {
		return nil, err
	}
	if max := s.maxImageSize(); int64(len(input.ImageBytes)) > max {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrImageTooLarge, len(input.ImageBytes), max)
	}

	imageKey := s.archiveImage(ctx, input, imageType)

	extracted, err := s.ocr.ExtractText(ctx, input.ImageBytes, input.ContentType)
	if err != nil {
		if errors.Is(err, domain.ErrOCRFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrOCRFailed, err)
	}

	text, language := s.translate(ctx, extracted.Text)
	result := s.runPipeline(ctx, text, domain.NewUserProfile(input.Allergies))
	noteTranslation(result, language)

	confidence := extracted.Confidence
	analysis := &domain.Analysis{
		ID:               uuid.New(),
		Source:           domain.SourceImage,
		RawText:          extracted.Text,
		DetectedLanguage: language,
		OCRConfidence:    &confidence,
		ImageKey:         imageKey,
		HealthScore:      result.HealthScore,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.finish(ctx, analysis, result); err != nil {
		return nil, err
	}
	return analysis, nil
}

// runPipeline executes normalize, match, research, merge, and assemble.
// Empty or unparseable text produces a neutral result, never an error.
func (s *analysisService) runPipeline(ctx context.Context, text string, profile domain.UserProfile) *domain.AnalysisResult {
	tokens := analyzer.Normalize(text)
	matches := s.engine.Match(tokens)

	var outcomes map[string]domain.ResearchOutcome
	if names := analyzer.UnresolvedNames(tokens, matches); len(names) > 0 {
		outcomes = s.gatherer.Gather(ctx, names)
	}

	resolved := s.engine.Merge(tokens, matches, outcomes)
	result := s.engine.Assemble(resolved, outcomes, profile)
	return &result
}

// translate runs the text through the translation provider. Translation
// failures fall back to the original text.
func (s *analysisService) translate(ctx context.Context, text string) (string, string) {
	if s.translator == nil || strings.TrimSpace(text) == "" {
		return text, "en"
	}
	translated, err := s.translator.Translate(ctx, text)
	if err != nil {
		log.Printf("service.analysis: translation failed, using original text: %v", err)
		return text, "en"
	}
	return translated.Text, translated.DetectedLanguage
}

// noteTranslation appends a note to the summary when the ingredient text
// was translated before analysis.
func noteTranslation(result *domain.AnalysisResult, language string) {
	if language == "" || language == "en" {
		return
	}
	result.Summary += fmt.Sprintf(" Ingredient text was translated from %q before analysis.", language)
}

// archiveImage uploads the label image to object storage. Archival is best
// effort; a failed upload never blocks the analysis.
func (s *analysisService) archiveImage(ctx context.Context, input *AnalyzeImageInput, imageType domain.ImageType) string {
	if s.storage == nil || s.s3cfg == nil || !s.s3cfg.Enabled {
		return ""
	}
	key := fmt.Sprintf("labels/%s.%s", uuid.New(), imageType)
	err := s.storage.Upload(ctx, port.StoredImage{
		Key:         key,
		Body:        bytes.NewReader(input.ImageBytes),
		ContentType: input.ContentType,
		Size:        int64(len(input.ImageBytes)),
	})
	if err != nil {
		log.Printf("service.analysis: image upload failed: %v", err)
		return ""
	}
	return key
}

func (s *analysisService) finish(ctx context.Context, analysis *domain.Analysis, result *domain.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding analysis result: %w", err)
	}
	analysis.Result = payload

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Create(ctx, analysis); err != nil {
		return fmt.Errorf("persisting analysis: %w", err)
	}
	return nil
}

func (s *analysisService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
	if s.repo == nil {
		return nil, domain.ErrNotFound
	}
	analysis, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if analysis.ImageKey != "" && s.storage != nil {
		url, err := s.storage.PresignGet(ctx, analysis.ImageKey, s.presignExpiry())
		if err != nil {
			log.Printf("service.analysis: presigning image %s failed: %v", analysis.ImageKey, err)
		} else {
			analysis.ImageURL = url
		}
	}
	return analysis, nil
}

func (s *analysisService) presignExpiry() time.Duration {
	if s.s3cfg != nil && s.s3cfg.PresignExpiry > 0 {
		return time.Duration(s.s3cfg.PresignExpiry) * time.Second
	}
	return time.Hour
}

func (s *analysisService) List(ctx context.Context, offset, limit int) ([]domain.Analysis, int, error) {
	if s.repo == nil {
		return nil, 0, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *analysisService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.repo == nil {
		return domain.ErrNotFound
	}
	analysis, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if analysis.ImageKey != "" && s.storage != nil {
		if err := s.storage.Delete(ctx, analysis.ImageKey); err != nil {
			log.Printf("service.analysis: deleting image %s failed: %v", analysis.ImageKey, err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *analysisService) maxImageSize() int64 {
	maxMB := int64(defaultMaxImageSizeMB)
	if s.s3cfg != nil && s.s3cfg.MaxImageSizeMB > 0 {
		maxMB = s.s3cfg.MaxImageSizeMB
	}
	return maxMB << 20
}

// classifyImage validates the upload's content type, falling back to the
// filename extension when the content type is missing or generic.
func classifyImage(contentType, filename string) (domain.ImageType, error) {
	if t, ok := domain.AllowedImageContentTypes[strings.ToLower(contentType)]; ok {
		return t, nil
	}
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext := strings.ToLower(filename[idx+1:])
		if t, ok := domain.AllowedImageExtensions[ext]; ok {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedImageType, contentType)
}
