package refdata

import (
	"context"
	"fmt"
	"log"

	"labelscan/internal/port"
)

// Load builds the reference database from a repository. A repository error
// is fatal to callers; an empty result set falls back to the builtin seed
// so a fresh install can still analyze labels.
func Load(ctx context.Context, repo port.IngredientRepository) (*Database, error) {
	records, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ingredient references: %w", err)
	}
	if len(records) == 0 {
		log.Println("refdata: ingredient_refs is empty, using builtin reference set")
		return LoadBuiltin(), nil
	}
	return New(records)
}
