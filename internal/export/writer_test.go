package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 13)
	assert.Equal(t, "ID", row[0])
	assert.Equal(t, "Health Score", row[4])
	assert.Equal(t, "Created At", row[12])
}

func TestWriteAnalyses(t *testing.T) {
	result := domain.AnalysisResult{
		Ingredients: []domain.ResolvedIngredient{
			{
				Token:      domain.IngredientToken{Canonical: "water"},
				Record:     &domain.IngredientRecord{CanonicalName: "water", Safety: domain.SafetySafe},
				Provenance: domain.ProvenanceDatabase,
				Confidence: 1.0,
			},
			{
				Token:      domain.IngredientToken{Canonical: "mystery"},
				Provenance: domain.ProvenanceUnknown,
			},
		},
		HealthScore: 8,
		Warnings:    []domain.Warning{{Ingredient: "water", Severity: domain.SeverityMedium}},
		Summary:     "Analyzed 2 ingredients.",
	}
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	confidence := 0.875
	analysis := domain.Analysis{
		ID:               uuid.New(),
		Source:           domain.SourceImage,
		DetectedLanguage: "en",
		OCRConfidence:    &confidence,
		HealthScore:      8,
		Result:           payload,
		CreatedAt:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteAnalyses([]domain.Analysis{analysis}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, analysis.ID.String(), row[0])
	assert.Equal(t, "image", row[1])
	assert.Equal(t, "en", row[2])
	assert.Equal(t, "0.88", row[3])
	assert.Equal(t, "8", row[4])
	assert.Equal(t, "2", row[5])
	assert.Equal(t, "1", row[6])
	assert.Equal(t, "0", row[7])
	assert.Equal(t, "1", row[8])
	assert.Equal(t, "1", row[9])
	assert.Equal(t, "Analyzed 2 ingredients.", row[10])
	assert.Equal(t, "water; mystery", row[11])
	assert.Equal(t, "2026-03-14 09:30:00", row[12])
}

func TestWriteAnalysesTolerateBadResultPayload(t *testing.T) {
	analysis := domain.Analysis{
		ID:          uuid.New(),
		Source:      domain.SourceText,
		HealthScore: 10,
		Result:      []byte("not json"),
		CreatedAt:   time.Now().UTC(),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteAnalyses([]domain.Analysis{analysis}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10", rows[0][4])
	assert.Equal(t, "0", rows[0][5])
}
