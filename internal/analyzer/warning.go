package analyzer

import (
	"fmt"
	"strings"

	"labelscan/internal/domain"
)

// Warnings cross-references each resolved ingredient's allergen tags against
// the user's declared allergies and flags avoid-level ingredients regardless
// of profile. Output order follows token order; allergen warnings for one
// ingredient follow its tag order.
func Warnings(resolved []domain.ResolvedIngredient, profile domain.UserProfile) []domain.Warning {
	declared := make(map[string]bool, len(profile.Allergies))
	for _, a := range profile.Allergies {
		declared[a] = true
	}

	var warnings []domain.Warning
	for i := range resolved {
		r := &resolved[i]
		name := r.Name()
		for _, tag := range r.AllergenTags() {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if !declared[tag] {
				continue
			}
			warnings = append(warnings, domain.Warning{
				Ingredient: name,
				Allergen:   tag,
				Severity:   domain.SeverityHigh,
				Message:    fmt.Sprintf("%s contains %s, which is on your allergy list", name, tag),
			})
		}
		if r.Safety() == domain.SafetyAvoid {
			warnings = append(warnings, domain.Warning{
				Ingredient: name,
				Severity:   domain.SeverityMedium,
				Message:    fmt.Sprintf("%s is classified as an ingredient to avoid", name),
			})
		}
	}
	return warnings
}
