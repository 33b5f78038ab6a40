package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labelscan/internal/port"
)

// MockOCRProvider is a mock implementation of port.OCRProvider.
type MockOCRProvider struct {
	mock.Mock
}

func (m *MockOCRProvider) ExtractText(ctx context.Context, image []byte, contentType string) (*port.OCRText, error) {
	args := m.Called(ctx, image, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.OCRText), args.Error(1)
}

// MockTranslationProvider is a mock implementation of port.TranslationProvider.
type MockTranslationProvider struct {
	mock.Mock
}

func (m *MockTranslationProvider) Translate(ctx context.Context, text string) (*port.TranslatedText, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.TranslatedText), args.Error(1)
}
