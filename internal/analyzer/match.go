package analyzer

import "labelscan/internal/domain"

// Match resolves each token against the reference database using exact,
// alias, then fuzzy lookup. The returned slice is parallel to tokens; a nil
// entry marks an unresolved token. Matching never fails, a miss is an
// expected outcome.
func (e *Engine) Match(tokens []domain.IngredientToken) []*domain.IngredientRecord {
	matches := make([]*domain.IngredientRecord, len(tokens))
	for i, tok := range tokens {
		matches[i] = e.matchOne(tok.Canonical)
	}
	return matches
}

func (e *Engine) matchOne(canonical string) *domain.IngredientRecord {
	if rec, ok := e.db.Lookup(canonical); ok {
		return rec
	}
	if rec, ok := e.db.LookupAlias(canonical); ok {
		return rec
	}
	return e.fuzzyMatch(canonical)
}

// fuzzyMatch scans the sorted canonical names for the single best candidate
// at or above the similarity threshold. Ties prefer the shorter name, then
// the lexically smaller one; scanning sorted names makes the outcome
// independent of map iteration order.
func (e *Engine) fuzzyMatch(canonical string) *domain.IngredientRecord {
	var bestName string
	bestScore := 0.0
	for _, name := range e.db.Names() {
		score := similarity(canonical, name)
		if score < e.opts.FuzzyThreshold {
			continue
		}
		switch {
		case score > bestScore:
			bestName, bestScore = name, score
		case score == bestScore && len(name) < len(bestName):
			bestName = name
		}
	}
	if bestName == "" {
		return nil
	}
	rec, _ := e.db.Lookup(bestName)
	return rec
}

// similarity returns a ratio in [0,1] between two strings: twice the length
// of their longest common subsequence over the sum of their lengths.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// UnresolvedNames lists the canonical names of tokens with no database
// match, de-duplicated in token order. These are the names handed to the
// research layer.
func UnresolvedNames(tokens []domain.IngredientToken, matches []*domain.IngredientRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for i, tok := range tokens {
		if matches[i] != nil || seen[tok.Canonical] {
			continue
		}
		seen[tok.Canonical] = true
		names = append(names, tok.Canonical)
	}
	return names
}
