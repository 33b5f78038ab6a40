package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/domain"
)

func allergenIngredient(name string, tags ...string) domain.ResolvedIngredient {
	return domain.ResolvedIngredient{
		Token: domain.IngredientToken{Raw: name, Canonical: name},
		Record: &domain.IngredientRecord{
			CanonicalName: name,
			Safety:        domain.SafetySafe,
			AllergenTags:  tags,
		},
		Provenance: domain.ProvenanceDatabase,
		Confidence: 1.0,
	}
}

func TestWarningsAllergenMatch(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		allergenIngredient("wheat flour", "gluten"),
	}
	profile := domain.NewUserProfile([]string{"Gluten"})

	warnings := Warnings(resolved, profile)
	require.Len(t, warnings, 1)
	assert.Equal(t, "wheat flour", warnings[0].Ingredient)
	assert.Equal(t, "gluten", warnings[0].Allergen)
	assert.Equal(t, domain.SeverityHigh, warnings[0].Severity)
}

func TestWarningsNoneWithoutIntersection(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		allergenIngredient("wheat flour", "gluten"),
		allergenIngredient("water"),
	}
	assert.Empty(t, Warnings(resolved, domain.NewUserProfile([]string{"peanuts"})))
	assert.Empty(t, Warnings(resolved, domain.UserProfile{}))
}

func TestWarningsRemovingAllergyRemovesExactlyThatWarning(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		allergenIngredient("wheat flour", "gluten"),
		allergenIngredient("milk", "dairy"),
	}

	both := Warnings(resolved, domain.NewUserProfile([]string{"gluten", "dairy"}))
	require.Len(t, both, 2)

	one := Warnings(resolved, domain.NewUserProfile([]string{"dairy"}))
	require.Len(t, one, 1)
	assert.Equal(t, "milk", one[0].Ingredient)
}

func TestWarningsAvoidLevelFlaggedWithoutProfile(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		dbIngredient("sodium nitrite", domain.SafetyAvoid),
	}
	warnings := Warnings(resolved, domain.UserProfile{})
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.SeverityMedium, warnings[0].Severity)
	assert.Empty(t, warnings[0].Allergen)
}

func TestWarningsUnknownIngredientEmitsNone(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		unknownIngredient("mystery", 0),
	}
	assert.Empty(t, Warnings(resolved, domain.NewUserProfile([]string{"gluten"})))
}

func TestWarningsStableByTokenOrder(t *testing.T) {
	resolved := []domain.ResolvedIngredient{
		allergenIngredient("milk", "dairy"),
		allergenIngredient("wheat flour", "gluten"),
	}
	warnings := Warnings(resolved, domain.NewUserProfile([]string{"gluten", "dairy"}))
	require.Len(t, warnings, 2)
	assert.Equal(t, "milk", warnings[0].Ingredient)
	assert.Equal(t, "wheat flour", warnings[1].Ingredient)
}
