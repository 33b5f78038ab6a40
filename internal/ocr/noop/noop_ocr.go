package noop

import (
	"context"
	"fmt"
	"log"

	"labelscan/internal/domain"
	"labelscan/internal/port"
)

type noopProvider struct{}

// NewNoopProvider creates an OCRProvider that rejects every request. Used
// when no OCR endpoint is configured; image analysis is then unavailable.
func NewNoopProvider() port.OCRProvider {
	return noopProvider{}
}

func (noopProvider) ExtractText(_ context.Context, _ []byte, contentType string) (*port.OCRText, error) {
	log.Printf("[NOOP OCR] rejecting %s image, no OCR provider configured", contentType)
	return nil, fmt.Errorf("%w: no OCR provider configured", domain.ErrOCRFailed)
}
