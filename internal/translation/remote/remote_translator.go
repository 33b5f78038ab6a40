package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"labelscan/internal/config"
	"labelscan/internal/port"
)

// Translator implements port.TranslationProvider against a remote
// translation service speaking a small JSON protocol.
type Translator struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewTranslator creates a remote translator from a provider config.
func NewTranslator(cfg *config.ProviderConfig) *Translator {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Translator{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type translateResponse struct {
	Text             string `json:"text"`
	DetectedLanguage string `json:"detected_language"`
}

func (t *Translator) Translate(ctx context.Context, text string) (*port.TranslatedText, error) {
	body, err := json.Marshal(translateRequest{Text: text, Target: "en"})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling translation service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var parsed translateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if parsed.DetectedLanguage == "" {
		parsed.DetectedLanguage = "en"
	}
	return &port.TranslatedText{Text: parsed.Text, DetectedLanguage: parsed.DetectedLanguage}, nil
}
