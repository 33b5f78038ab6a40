package analyzer

import (
	"fmt"

	"labelscan/internal/domain"
)

// confidence at or above this counts as a high-confidence research result
const highConfidence = 0.7

// Assemble builds the final analysis result from the resolved ingredient
// sequence, the research outcomes that produced it, and the caller's
// profile. It composes the score, warnings, summary, recommendations, and
// research statistics; it makes no resolution decisions of its own.
func (e *Engine) Assemble(resolved []domain.ResolvedIngredient, outcomes map[string]domain.ResearchOutcome, profile domain.UserProfile) domain.AnalysisResult {
	score := Score(resolved)
	warnings := Warnings(resolved, profile)

	var info domain.ResearchInfo
	for i := range resolved {
		r := &resolved[i]
		outcome, ok := outcomes[r.Token.Canonical]
		if !ok {
			continue
		}
		info.TotalResearched++
		info.Researched = append(info.Researched, r.Name())
		if outcome.Failed() {
			continue
		}
		if clamp01(outcome.Result.Confidence) >= highConfidence {
			info.HighConfidence++
		} else {
			info.LowConfidence++
		}
	}

	return domain.AnalysisResult{
		Ingredients:     resolved,
		HealthScore:     score,
		Warnings:        warnings,
		Summary:         summarize(resolved, score),
		Recommendations: recommend(resolved, warnings),
		ResearchInfo:    info,
	}
}

func summarize(resolved []domain.ResolvedIngredient, score int) string {
	if len(resolved) == 0 {
		return "No ingredients detected."
	}
	counts := make(map[domain.SafetyLevel]int)
	unknown := 0
	for i := range resolved {
		counts[resolved[i].Safety()]++
		if resolved[i].Provenance == domain.ProvenanceUnknown {
			unknown++
		}
	}

	var verdict string
	switch {
	case score >= 8:
		verdict = "Overall this product looks relatively safe."
	case score >= 5:
		verdict = "This product has a mixed ingredient profile."
	default:
		verdict = "This product contains several concerning ingredients."
	}

	s := fmt.Sprintf("Analyzed %d ingredients: %d safe, %d moderate, %d caution, %d avoid. %s",
		len(resolved),
		counts[domain.SafetySafe],
		counts[domain.SafetyModerate],
		counts[domain.SafetyCaution],
		counts[domain.SafetyAvoid],
		verdict)
	if unknown > 0 {
		s += fmt.Sprintf(" %d could not be confidently identified.", unknown)
	}
	return s
}

func recommend(resolved []domain.ResolvedIngredient, warnings []domain.Warning) []string {
	counts := make(map[domain.SafetyLevel]int)
	unknown := 0
	allergy := 0
	for i := range resolved {
		counts[resolved[i].Safety()]++
		if resolved[i].Provenance == domain.ProvenanceUnknown {
			unknown++
		}
	}
	for _, w := range warnings {
		if w.Severity == domain.SeverityHigh {
			allergy++
		}
	}

	var recs []string
	if allergy > 0 {
		recs = append(recs, "This product matches allergies you declared; do not consume it without verifying with the manufacturer.")
	}
	if n := counts[domain.SafetyAvoid]; n > 0 {
		recs = append(recs, fmt.Sprintf("Consider avoiding this product: %d ingredient(s) are classified as avoid.", n))
	}
	if n := counts[domain.SafetyCaution]; n > 0 {
		recs = append(recs, fmt.Sprintf("Limit intake: %d ingredient(s) warrant caution.", n))
	}
	if unknown > 0 {
		recs = append(recs, "Some ingredients could not be identified and are treated conservatively.")
	}
	if len(recs) == 0 && len(resolved) > 0 {
		recs = append(recs, "No significant concerns found in the listed ingredients.")
	}
	return recs
}
