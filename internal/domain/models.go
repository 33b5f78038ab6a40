package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IngredientToken is one normalized ingredient mention from the label text.
// Tokens are immutable once produced by the normalizer.
type IngredientToken struct {
	Raw       string `json:"raw"`
	Canonical string `json:"canonical"`
	Position  int    `json:"position"`
	// Parent holds the canonical text of the enclosing ingredient when this
	// token came from a parenthetical sub-list, e.g. "wheat" inside
	// "Flour (wheat, niacin)". Reporting only; matching ignores it.
	Parent string `json:"parent,omitempty"`
}

// IngredientRecord is one curated reference database entry.
type IngredientRecord struct {
	CanonicalName string      `json:"canonical_name"`
	Aliases       []string    `json:"aliases,omitempty"`
	Category      string      `json:"category"`
	Safety        SafetyLevel `json:"safety_level"`
	AllergenTags  []string    `json:"allergen_tags,omitempty"`
	Natural       bool        `json:"natural"`
	Description   string      `json:"description"`
}

// ResearchResult is a structured candidate record returned by the knowledge
// researcher for an unresolved token.
type ResearchResult struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Purpose      string      `json:"purpose"`
	Safety       SafetyLevel `json:"safety_level"`
	Natural      bool        `json:"natural"`
	AllergenTags []string    `json:"allergen_tags,omitempty"`
	Confidence   float64     `json:"confidence"`
}

// ResearchOutcome is the terminal outcome of one research call: either a
// structured result or a typed failure reason. Exactly one side is set.
type ResearchOutcome struct {
	Result  *ResearchResult `json:"result,omitempty"`
	Failure FailureReason   `json:"failure,omitempty"`
}

// Failed reports whether the research call ended in a typed failure.
func (o ResearchOutcome) Failed() bool {
	return o.Result == nil
}

// ResolvedIngredient pairs an input token with whatever information the
// pipeline could attach to it. The provenance tag tells which side carries
// data: Record for database, Research for researched, neither for unknown.
type ResolvedIngredient struct {
	Token      IngredientToken   `json:"token"`
	Record     *IngredientRecord `json:"record,omitempty"`
	Research   *ResearchResult   `json:"research,omitempty"`
	Provenance Provenance        `json:"provenance"`
	Confidence float64           `json:"effective_confidence"`
}

// Name returns the display name for the ingredient: the canonical database
// name, the researched name, or the token text for unknowns.
func (r *ResolvedIngredient) Name() string {
	switch r.Provenance {
	case ProvenanceDatabase:
		return r.Record.CanonicalName
	case ProvenanceResearched:
		if r.Research.Name != "" {
			return r.Research.Name
		}
	}
	return r.Token.Canonical
}

// Safety returns the effective safety level. Unknown ingredients always
// report caution, never safe.
func (r *ResolvedIngredient) Safety() SafetyLevel {
	switch r.Provenance {
	case ProvenanceDatabase:
		return r.Record.Safety
	case ProvenanceResearched:
		return r.Research.Safety
	default:
		return SafetyCaution
	}
}

// AllergenTags returns the effective allergen tags. Unknown ingredients
// carry none.
func (r *ResolvedIngredient) AllergenTags() []string {
	switch r.Provenance {
	case ProvenanceDatabase:
		return r.Record.AllergenTags
	case ProvenanceResearched:
		return r.Research.AllergenTags
	default:
		return nil
	}
}

// Category returns the reference category for database entries, the
// researched purpose otherwise, or empty for unknowns.
func (r *ResolvedIngredient) Category() string {
	switch r.Provenance {
	case ProvenanceDatabase:
		return r.Record.Category
	case ProvenanceResearched:
		return r.Research.Purpose
	default:
		return ""
	}
}

// UserProfile carries the caller's declared allergies, already normalized
// to lower case. Supplied per request, never persisted by the core.
type UserProfile struct {
	Allergies []string `json:"allergies,omitempty"`
}

// NewUserProfile builds a profile from raw allergy strings, trimming,
// lower-casing, and dropping empties and duplicates.
func NewUserProfile(allergies []string) UserProfile {
	seen := make(map[string]bool, len(allergies))
	var out []string
	for _, a := range allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return UserProfile{Allergies: out}
}

// Warning flags a single ingredient for the caller's attention.
type Warning struct {
	Ingredient string          `json:"ingredient"`
	Allergen   string          `json:"allergen,omitempty"`
	Severity   WarningSeverity `json:"severity"`
	Message    string          `json:"message"`
}

// ResearchInfo summarizes the knowledge-research activity of one analysis.
type ResearchInfo struct {
	TotalResearched int      `json:"total_researched"`
	HighConfidence  int      `json:"high_confidence_count"`
	LowConfidence   int      `json:"low_confidence_count"`
	Researched      []string `json:"researched_ingredients,omitempty"`
}

// AnalysisResult is the complete outcome of one analysis request. Built once
// by the report assembler and immutable after construction.
type AnalysisResult struct {
	Ingredients     []ResolvedIngredient `json:"ingredients"`
	HealthScore     int                  `json:"health_score"`
	Warnings        []Warning            `json:"warnings"`
	Summary         string               `json:"summary"`
	Recommendations []string             `json:"recommendations,omitempty"`
	ResearchInfo    ResearchInfo         `json:"research_info"`
}

// Analysis is the persisted record of a completed analysis.
type Analysis struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	Source           AnalysisSource `db:"source" json:"source"`
	RawText          string         `db:"raw_text" json:"raw_text"`
	DetectedLanguage string         `db:"detected_language" json:"detected_language"`
	OCRConfidence    *float64       `db:"ocr_confidence" json:"ocr_confidence,omitempty"`
	ImageKey         string         `db:"image_key" json:"image_key,omitempty"`
	// ImageURL is a short-lived presigned link to the archived label image,
	// attached on single-record reads. Never persisted.
	ImageURL    string          `db:"-" json:"image_url,omitempty"`
	HealthScore int             `db:"health_score" json:"health_score"`
	Result      json.RawMessage `db:"result" json:"result"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
