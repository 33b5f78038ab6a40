package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"labelscan/internal/config"
	"labelscan/internal/domain"
	"labelscan/internal/port"
)

// Provider implements port.OCRProvider against a remote text-extraction
// service speaking a small JSON protocol.
type Provider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewProvider creates a remote OCR provider from a provider config.
func NewProvider(cfg *config.ProviderConfig) *Provider {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Provider{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type extractRequest struct {
	Image       string `json:"image"`
	ContentType string `json:"content_type"`
}

type extractResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

func (p *Provider) ExtractText(ctx context.Context, image []byte, contentType string) (*port.OCRText, error) {
	body, err := json.Marshal(extractRequest{
		Image:       base64.StdEncoding.EncodeToString(image),
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling request: %v", domain.ErrOCRFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", domain.ErrOCRFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling OCR service: %v", domain.ErrOCRFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrOCRFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: OCR service returned status %d", domain.ErrOCRFailed, resp.StatusCode)
	}

	var parsed extractResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrOCRFailed, err)
	}
	return &port.OCRText{Text: parsed.Text, Confidence: parsed.Confidence}, nil
}
