package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/config"
	"labelscan/internal/domain"
	"labelscan/internal/research"
)

func chatCompletion(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(body)
}

func newTestResearcher(endpoint string) *Researcher {
	return NewResearcherWithEndpoint(&config.ResearcherConfig{APIKey: "test-key", Model: "test-model"}, endpoint)
}

func TestResearchParsesStructuredResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		fmt.Fprint(w, chatCompletion(`{
			"name": "Taurine",
			"description": "An amino sulfonic acid.",
			"purpose": "additive",
			"safety_level": "moderate",
			"natural": false,
			"allergen_tags": [],
			"confidence": 0.92
		}`))
	}))
	defer server.Close()

	result, err := newTestResearcher(server.URL).Research(context.Background(), "taurine")
	require.NoError(t, err)
	assert.Equal(t, "Taurine", result.Name)
	assert.Equal(t, domain.SafetyModerate, result.Safety)
	assert.Equal(t, 0.92, result.Confidence)
}

func TestResearchExtractsJSONFromProse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		content := "Sure, here is the analysis:\n```json\n" +
			`{"name": "Guarana", "safety_level": "caution", "confidence": 0.6}` +
			"\n```\nLet me know if you need more."
		fmt.Fprint(w, chatCompletion(content))
	}))
	defer server.Close()

	result, err := newTestResearcher(server.URL).Research(context.Background(), "guarana")
	require.NoError(t, err)
	assert.Equal(t, "Guarana", result.Name)
	assert.Equal(t, domain.SafetyCaution, result.Safety)
}

func TestResearchClampsConfidence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, chatCompletion(`{"name": "X", "safety_level": "safe", "confidence": 3.5}`))
	}))
	defer server.Close()

	result, err := newTestResearcher(server.URL).Research(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestResearchUnknownSafetyFallsBackToModerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, chatCompletion(`{"name": "X", "safety_level": "mystery", "confidence": 0.5}`))
	}))
	defer server.Close()

	result, err := newTestResearcher(server.URL).Research(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, domain.SafetyModerate, result.Safety)
}

func TestResearchServerErrorIsProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestResearcher(server.URL).Research(context.Background(), "x")
	require.Error(t, err)

	var failure *research.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, domain.FailureProviderError, failure.Reason)
}

func TestResearchNonJSONOutputIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, chatCompletion("I cannot answer that."))
	}))
	defer server.Close()

	_, err := newTestResearcher(server.URL).Research(context.Background(), "x")
	var failure *research.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, domain.FailureMalformedResponse, failure.Reason)
}

func TestResearchEmptyChoicesIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer server.Close()

	_, err := newTestResearcher(server.URL).Research(context.Background(), "x")
	var failure *research.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, domain.FailureMalformedResponse, failure.Reason)
}

func TestResearchContextDeadlineIsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, chatCompletion(`{"confidence": 1}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestResearcher(server.URL).Research(ctx, "x")
	require.Error(t, err)

	var failure *research.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, domain.FailureTimeout, failure.Reason)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("prefix {\"a\":1} suffix"))
	assert.Equal(t, "", extractJSON("no json here"))
	assert.Equal(t, `{"a":{"b":2}}`, extractJSON(`{"a":{"b":2}}`))
}
