package analyzer

import "labelscan/internal/domain"

// Merge combines database matches and research outcomes into one resolved
// entry per token, preserving token order. Database matches carry confidence
// 1.0. Research results below the acceptance threshold, and research
// failures, are downgraded to unknown; this is the only place such a
// downgrade happens.
func (e *Engine) Merge(tokens []domain.IngredientToken, matches []*domain.IngredientRecord, outcomes map[string]domain.ResearchOutcome) []domain.ResolvedIngredient {
	resolved := make([]domain.ResolvedIngredient, 0, len(tokens))
	for i, tok := range tokens {
		if rec := matches[i]; rec != nil {
			resolved = append(resolved, domain.ResolvedIngredient{
				Token:      tok,
				Record:     rec,
				Provenance: domain.ProvenanceDatabase,
				Confidence: 1.0,
			})
			continue
		}

		outcome, ok := outcomes[tok.Canonical]
		if !ok || outcome.Failed() {
			resolved = append(resolved, domain.ResolvedIngredient{
				Token:      tok,
				Provenance: domain.ProvenanceUnknown,
			})
			continue
		}

		result := outcome.Result
		confidence := clamp01(result.Confidence)
		if confidence < e.opts.MinConfidence {
			// The reported confidence survives into the unknown entry,
			// the research payload does not.
			resolved = append(resolved, domain.ResolvedIngredient{
				Token:      tok,
				Provenance: domain.ProvenanceUnknown,
				Confidence: confidence,
			})
			continue
		}

		resolved = append(resolved, domain.ResolvedIngredient{
			Token:      tok,
			Research:   result,
			Provenance: domain.ProvenanceResearched,
			Confidence: confidence,
		})
	}
	return resolved
}
