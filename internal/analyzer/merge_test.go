package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/domain"
)

func TestMergeDatabaseMatchesCarryFullConfidence(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Water, Sugar")
	resolved := e.Merge(tokens, e.Match(tokens), nil)

	require.Len(t, resolved, 2)
	for _, r := range resolved {
		assert.Equal(t, domain.ProvenanceDatabase, r.Provenance)
		assert.Equal(t, 1.0, r.Confidence)
		assert.NotNil(t, r.Record)
		assert.Nil(t, r.Research)
	}
}

func TestMergeAcceptsResearchAboveThreshold(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Xyzolan-9000")
	outcomes := map[string]domain.ResearchOutcome{
		"xyzolan-9000": {Result: &domain.ResearchResult{
			Name:       "Xyzolan-9000",
			Safety:     domain.SafetyModerate,
			Confidence: 0.85,
		}},
	}
	resolved := e.Merge(tokens, e.Match(tokens), outcomes)

	require.Len(t, resolved, 1)
	assert.Equal(t, domain.ProvenanceResearched, resolved[0].Provenance)
	assert.Equal(t, 0.85, resolved[0].Confidence)
	assert.Equal(t, domain.SafetyModerate, resolved[0].Safety())
}

func TestMergeDowngradesLowConfidenceToUnknown(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Xyzolan-9000")
	outcomes := map[string]domain.ResearchOutcome{
		"xyzolan-9000": {Result: &domain.ResearchResult{
			Safety:       domain.SafetySafe,
			AllergenTags: []string{"soy"},
			Confidence:   0.2,
		}},
	}
	resolved := e.Merge(tokens, e.Match(tokens), outcomes)

	require.Len(t, resolved, 1)
	r := resolved[0]
	assert.Equal(t, domain.ProvenanceUnknown, r.Provenance)
	assert.Equal(t, 0.2, r.Confidence)
	assert.Equal(t, domain.SafetyCaution, r.Safety())
	assert.Empty(t, r.AllergenTags())
}

func TestMergeFailureBecomesUnknownWithZeroConfidence(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Xyzolan-9000")
	outcomes := map[string]domain.ResearchOutcome{
		"xyzolan-9000": {Failure: domain.FailureTimeout},
	}
	resolved := e.Merge(tokens, e.Match(tokens), outcomes)

	require.Len(t, resolved, 1)
	assert.Equal(t, domain.ProvenanceUnknown, resolved[0].Provenance)
	assert.Equal(t, 0.0, resolved[0].Confidence)
	assert.Equal(t, domain.SafetyCaution, resolved[0].Safety())
}

func TestMergeMissingOutcomeBecomesUnknown(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Xyzolan-9000")
	resolved := e.Merge(tokens, e.Match(tokens), map[string]domain.ResearchOutcome{})

	require.Len(t, resolved, 1)
	assert.Equal(t, domain.ProvenanceUnknown, resolved[0].Provenance)
}

func TestMergeClampsReportedConfidence(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Xyzolan-9000")
	outcomes := map[string]domain.ResearchOutcome{
		"xyzolan-9000": {Result: &domain.ResearchResult{
			Safety:     domain.SafetyModerate,
			Confidence: 1.7,
		}},
	}
	resolved := e.Merge(tokens, e.Match(tokens), outcomes)

	require.Len(t, resolved, 1)
	assert.Equal(t, 1.0, resolved[0].Confidence)
}

func TestMergePreservesTokenOrder(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Water, Xyzolan-9000, Sugar")
	resolved := e.Merge(tokens, e.Match(tokens), nil)

	require.Len(t, resolved, 3)
	assert.Equal(t, "water", resolved[0].Name())
	assert.Equal(t, "xyzolan-9000", resolved[1].Name())
	assert.Equal(t, "sugar", resolved[2].Name())
}
