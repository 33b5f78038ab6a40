package analyzer

import "labelscan/internal/domain"

var safetyPenalty = map[domain.SafetyLevel]float64{
	domain.SafetySafe:     0,
	domain.SafetyModerate: 1,
	domain.SafetyCaution:  2,
	domain.SafetyAvoid:    4,
}

// scoreSteps maps the average confidence-weighted penalty to the 1..10
// scale. Entries are checked in order; the first threshold at or above the
// average wins.
var scoreSteps = []struct {
	maxPenalty float64
	score      int
}{
	{0, 10},
	{0.25, 9},
	{0.5, 8},
	{0.75, 7},
	{1.0, 6},
	{1.5, 5},
	{2.0, 4},
	{2.5, 3},
	{3.0, 2},
}

// Score aggregates safety levels and confidences into one health score on
// the 1..10 scale. Each ingredient contributes its safety penalty weighted
// by its effective confidence; unknown ingredients contribute at least the
// moderate penalty so a low confidence never reads as safe. An empty list
// scores 10.
func Score(resolved []domain.ResolvedIngredient) int {
	if len(resolved) == 0 {
		return 10
	}
	total := 0.0
	for i := range resolved {
		r := &resolved[i]
		contribution := safetyPenalty[r.Safety()] * r.Confidence
		if r.Provenance == domain.ProvenanceUnknown {
			if floor := safetyPenalty[domain.SafetyModerate]; contribution < floor {
				contribution = floor
			}
		}
		total += contribution
	}
	average := total / float64(len(resolved))
	for _, step := range scoreSteps {
		if average <= step.maxPenalty {
			return step.score
		}
	}
	return 1
}
