package port

import (
	"context"

	"labelscan/internal/domain"
)

// IngredientRepository defines the contract for loading the curated
// ingredient reference data. Called once at process start.
type IngredientRepository interface {
	LoadAll(ctx context.Context) ([]domain.IngredientRecord, error)
}
