package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"labelscan/internal/config"
	"labelscan/internal/domain"
	"labelscan/internal/port"
	"labelscan/internal/research"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

func init() {
	factory := func(cfg *config.ResearcherConfig) (port.Researcher, error) {
		return NewResearcher(cfg), nil
	}
	research.RegisterProvider("openai", factory)
	research.RegisterProvider("openai_compatible", factory)
}

// Researcher implements port.Researcher against an OpenAI-compatible Chat
// Completions API.
type Researcher struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewResearcher creates a researcher from a researcher config. A configured
// base URL overrides the default OpenAI endpoint, which makes any
// chat-completions-compatible provider usable.
func NewResearcher(cfg *config.ResearcherConfig) *Researcher {
	endpoint := apiURL
	if cfg.BaseURL != "" {
		endpoint = strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions"
	}
	return newResearcher(cfg, endpoint)
}

// NewResearcherWithEndpoint creates a researcher pointing at a custom API
// endpoint (for testing).
func NewResearcherWithEndpoint(cfg *config.ResearcherConfig, endpoint string) *Researcher {
	return newResearcher(cfg, endpoint)
}

func newResearcher(cfg *config.ResearcherConfig, endpoint string) *Researcher {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Researcher{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// Research asks the model about one ingredient name. Per-call deadlines come
// from ctx; the caller owns timeout policy. Every error return is a typed
// *research.Failure.
func (r *Researcher) Research(ctx context.Context, ingredientName string) (*domain.ResearchResult, error) {
	reqBody := map[string]interface{}{
		"model":       r.model,
		"temperature": 0.2,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": research.BuildIngredientPrompt(ingredientName),
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, research.NewFailure(domain.FailureProviderError, fmt.Errorf("marshaling request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, research.NewFailure(domain.FailureProviderError, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, research.NewFailure(domain.FailureTimeout, err)
		}
		return nil, research.NewFailure(research.Classify(err), fmt.Errorf("calling research API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, research.NewFailure(domain.FailureProviderError, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, research.NewFailure(domain.FailureProviderError,
			fmt.Errorf("research API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500)))
	}

	return parseResponse(respBody)
}

// apiResponse models the Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func parseResponse(body []byte) (*domain.ResearchResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, research.NewFailure(domain.FailureMalformedResponse, fmt.Errorf("unmarshaling response: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, research.NewFailure(domain.FailureMalformedResponse, fmt.Errorf("empty response from API: no choices"))
	}

	text := extractJSON(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, research.NewFailure(domain.FailureMalformedResponse,
			fmt.Errorf("no JSON object in model output: %s", truncate(resp.Choices[0].Message.Content, 200)))
	}

	var parsed struct {
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Purpose      string   `json:"purpose"`
		SafetyLevel  string   `json:"safety_level"`
		Natural      bool     `json:"natural"`
		AllergenTags []string `json:"allergen_tags"`
		Confidence   float64  `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, research.NewFailure(domain.FailureMalformedResponse,
			fmt.Errorf("parsing model JSON output: %w (raw: %s)", err, truncate(text, 200)))
	}

	confidence := parsed.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &domain.ResearchResult{
		Name:         parsed.Name,
		Description:  parsed.Description,
		Purpose:      parsed.Purpose,
		Safety:       domain.ParseSafetyLevel(parsed.SafetyLevel),
		Natural:      parsed.Natural,
		AllergenTags: parsed.AllergenTags,
		Confidence:   confidence,
	}, nil
}

// extractJSON pulls the outermost JSON object out of model output that may
// wrap it in prose or code fences.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
