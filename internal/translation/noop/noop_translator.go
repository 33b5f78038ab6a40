package noop

import (
	"context"

	"labelscan/internal/port"
)

type noopTranslator struct{}

// NewNoopTranslator creates a TranslationProvider that passes text through
// unchanged and reports English. Used when no translation endpoint is
// configured.
func NewNoopTranslator() port.TranslationProvider {
	return noopTranslator{}
}

func (noopTranslator) Translate(_ context.Context, text string) (*port.TranslatedText, error) {
	return &port.TranslatedText{Text: text, DetectedLanguage: "en"}, nil
}
