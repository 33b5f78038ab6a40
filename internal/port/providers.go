package port

import "context"

// OCRText is the text extracted from a label image by the OCR provider.
// The confidence value is informational only; it never alters matching.
type OCRText struct {
	Text       string
	Confidence float64
}

// OCRProvider abstracts image-to-text extraction.
type OCRProvider interface {
	ExtractText(ctx context.Context, image []byte, contentType string) (*OCRText, error)
}

// TranslatedText is English ingredient text plus the detected source language.
type TranslatedText struct {
	Text             string
	DetectedLanguage string
}

// TranslationProvider abstracts language detection and translation. The core
// assumes the returned text is English.
type TranslationProvider interface {
	Translate(ctx context.Context, text string) (*TranslatedText, error)
}
