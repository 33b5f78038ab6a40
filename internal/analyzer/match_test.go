package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/domain"
	"labelscan/internal/refdata"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	db, err := refdata.New(refdata.Builtin())
	require.NoError(t, err)
	return New(db, DefaultOptions())
}

func TestMatchExact(t *testing.T) {
	e := newTestEngine(t)
	matches := e.Match(Normalize("Water, Citric Acid"))
	require.Len(t, matches, 2)
	require.NotNil(t, matches[0])
	assert.Equal(t, "water", matches[0].CanonicalName)
	require.NotNil(t, matches[1])
	assert.Equal(t, "citric acid", matches[1].CanonicalName)
}

func TestMatchAlias(t *testing.T) {
	e := newTestEngine(t)
	matches := e.Match(Normalize("Aqua, HFCS, Tartrazine"))
	require.Len(t, matches, 3)
	require.NotNil(t, matches[0])
	assert.Equal(t, "water", matches[0].CanonicalName)
	require.NotNil(t, matches[1])
	assert.Equal(t, "high fructose corn syrup", matches[1].CanonicalName)
	require.NotNil(t, matches[2])
	assert.Equal(t, "yellow 5", matches[2].CanonicalName)
}

func TestMatchFuzzyAcceptsCloseMisspelling(t *testing.T) {
	e := newTestEngine(t)
	matches := e.Match(Normalize("Suger, Citric Acd"))
	require.Len(t, matches, 2)
	require.NotNil(t, matches[0])
	assert.Equal(t, "sugar", matches[0].CanonicalName)
	require.NotNil(t, matches[1])
	assert.Equal(t, "citric acid", matches[1].CanonicalName)
}

func TestMatchUnresolvedBelowThreshold(t *testing.T) {
	e := newTestEngine(t)
	matches := e.Match(Normalize("Xyzolan-9000"))
	require.Len(t, matches, 1)
	assert.Nil(t, matches[0])
}

func TestMatchIsStableAcrossRuns(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Suger, Aqua, Xyzolan-9000, Milk")
	first := e.Match(tokens)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Match(tokens))
	}
}

func TestFuzzyTieBreakPrefersShorterName(t *testing.T) {
	// Both names score 2/3 against the query; the shorter one must win.
	db, err := refdata.New([]domain.IngredientRecord{
		{CanonicalName: "abcdabcd", Safety: domain.SafetyModerate},
		{CanonicalName: "ab", Safety: domain.SafetySafe},
	})
	require.NoError(t, err)
	e := New(db, Options{FuzzyThreshold: 0.5, MinConfidence: 0.3})

	rec := e.matchOne("abcd")
	require.NotNil(t, rec)
	assert.Equal(t, "ab", rec.CanonicalName)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("sugar", "sugar"))
	assert.Equal(t, 0.0, similarity("", "sugar"))
	assert.InDelta(t, 0.8, similarity("suger", "sugar"), 0.001)
	assert.Less(t, similarity("xyzolan-9000", "water"), 0.3)
}

func TestUnresolvedNames(t *testing.T) {
	e := newTestEngine(t)
	tokens := Normalize("Water, Xyzolan-9000, Quuxamine, Sugar")
	matches := e.Match(tokens)
	assert.Equal(t, []string{"xyzolan-9000", "quuxamine"}, UnresolvedNames(tokens, matches))
}
