package port

import (
	"context"

	"github.com/google/uuid"

	"labelscan/internal/domain"
)

// AnalysisRepository defines the contract for persisted analysis records.
type AnalysisRepository interface {
	Create(ctx context.Context, a *domain.Analysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Analysis, error)
	List(ctx context.Context, offset, limit int) ([]domain.Analysis, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
