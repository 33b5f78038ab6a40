package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"labelscan/internal/domain"
	"labelscan/internal/port"
)

type ingredientRepo struct {
	db *sqlx.DB
}

// NewIngredientRepo creates a new PostgreSQL-backed IngredientRepository.
func NewIngredientRepo(db *sqlx.DB) port.IngredientRepository {
	return &ingredientRepo{db: db}
}

// ingredientRow maps one ingredient_refs row; aliases and allergen tags are
// stored as JSONB arrays.
type ingredientRow struct {
	CanonicalName string          `db:"canonical_name"`
	Aliases       json.RawMessage `db:"aliases"`
	Category      string          `db:"category"`
	SafetyLevel   string          `db:"safety_level"`
	AllergenTags  json.RawMessage `db:"allergen_tags"`
	Natural       bool            `db:"is_natural"`
	Description   string          `db:"description"`
}

func (r *ingredientRepo) LoadAll(ctx context.Context) ([]domain.IngredientRecord, error) {
	var rows []ingredientRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT canonical_name, aliases, category, safety_level, allergen_tags, is_natural, description
		 FROM ingredient_refs
		 ORDER BY canonical_name`)
	if err != nil {
		return nil, fmt.Errorf("ingredientRepo.LoadAll: %w", err)
	}

	records := make([]domain.IngredientRecord, 0, len(rows))
	for _, row := range rows {
		rec := domain.IngredientRecord{
			CanonicalName: row.CanonicalName,
			Category:      row.Category,
			Safety:        domain.ParseSafetyLevel(row.SafetyLevel),
			Natural:       row.Natural,
			Description:   row.Description,
		}
		if len(row.Aliases) > 0 {
			if err := json.Unmarshal(row.Aliases, &rec.Aliases); err != nil {
				return nil, fmt.Errorf("ingredientRepo.LoadAll: aliases for %q: %w", row.CanonicalName, err)
			}
		}
		if len(row.AllergenTags) > 0 {
			if err := json.Unmarshal(row.AllergenTags, &rec.AllergenTags); err != nil {
				return nil, fmt.Errorf("ingredientRepo.LoadAll: allergen tags for %q: %w", row.CanonicalName, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
