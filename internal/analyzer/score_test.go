package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labelscan/internal/domain"
)

func dbIngredient(name string, safety domain.SafetyLevel) domain.ResolvedIngredient {
	return domain.ResolvedIngredient{
		Token:      domain.IngredientToken{Raw: name, Canonical: name},
		Record:     &domain.IngredientRecord{CanonicalName: name, Safety: safety},
		Provenance: domain.ProvenanceDatabase,
		Confidence: 1.0,
	}
}

func unknownIngredient(name string, confidence float64) domain.ResolvedIngredient {
	return domain.ResolvedIngredient{
		Token:      domain.IngredientToken{Raw: name, Canonical: name},
		Provenance: domain.ProvenanceUnknown,
		Confidence: confidence,
	}
}

func TestScoreEmptyListIsNeutralBest(t *testing.T) {
	assert.Equal(t, 10, Score(nil))
	assert.Equal(t, 10, Score([]domain.ResolvedIngredient{}))
}

func TestScoreAllSafeIsTen(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		dbIngredient("water", domain.SafetySafe),
		dbIngredient("citric acid", domain.SafetySafe),
	}
	assert.Equal(t, 10, Score(resolved))
}

func TestScoreMixedProfile(t *testing.T) {
	// Average penalty (0+1+0)/3 lands in the upper half of the scale.
	resolved := []domain.ResolvedIngredient{
		dbIngredient("water", domain.SafetySafe),
		dbIngredient("sugar", domain.SafetyModerate),
		dbIngredient("citric acid", domain.SafetySafe),
	}
	assert.GreaterOrEqual(t, Score(resolved), 7)
}

func TestScoreAllAvoidIsFloor(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		dbIngredient("sodium nitrite", domain.SafetyAvoid),
		dbIngredient("bha", domain.SafetyAvoid),
	}
	assert.Equal(t, 1, Score(resolved))
}

func TestScoreUnknownContributesAtLeastModeratePenalty(t *testing.T) {
	// A zero-confidence unknown still drags the score below a perfect 10.
	lone := Score([]domain.ResolvedIngredient{unknownIngredient("mystery", 0)})
	assert.Equal(t, 6, lone, "average penalty 1.0 maps to 6")

	mixed := Score([]domain.ResolvedIngredient{
		dbIngredient("water", domain.SafetySafe),
		unknownIngredient("mystery", 0),
	})
	assert.Less(t, mixed, 10)
}

func TestScoreSwappingAvoidForSafeNeverDecreasesScore(t *testing.T) {
	base := []domain.ResolvedIngredient{
		dbIngredient("water", domain.SafetySafe),
		dbIngredient("sugar", domain.SafetyModerate),
	}
	withAvoid := append(append([]domain.ResolvedIngredient{}, base...), dbIngredient("bha", domain.SafetyAvoid))
	withSafe := append(append([]domain.ResolvedIngredient{}, base...), dbIngredient("honey", domain.SafetySafe))

	assert.GreaterOrEqual(t, Score(withSafe), Score(withAvoid))
}

func TestScoreIsDeterministic(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		dbIngredient("water", domain.SafetySafe),
		dbIngredient("yellow 5", domain.SafetyCaution),
		unknownIngredient("mystery", 0.2),
	}
	first := Score(resolved)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(resolved))
	}
}

func TestScoreConfidenceWeighting(t *testing.T) {
	lowConf := domain.ResolvedIngredient{
		Token:      domain.IngredientToken{Canonical: "additive"},
		Research:   &domain.ResearchResult{Safety: domain.SafetyAvoid},
		Provenance: domain.ProvenanceResearched,
		Confidence: 0.3,
	}
	highConf := lowConf
	highConf.Confidence = 1.0

	assert.Greater(t, Score([]domain.ResolvedIngredient{lowConf}), Score([]domain.ResolvedIngredient{highConf}))
}
