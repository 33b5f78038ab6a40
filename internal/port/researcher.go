package port

import (
	"context"

	"labelscan/internal/domain"
)

// Researcher abstracts the external knowledge-research collaborator. A call
// either returns a structured candidate record or an error; implementations
// classify errors with the typed failures in the research package. One
// bounded attempt per call; retry policy belongs to the collaborator.
type Researcher interface {
	Research(ctx context.Context, ingredientName string) (*domain.ResearchResult, error)
}

// ResearchCache stores research results across requests, keyed by canonical
// ingredient name. Implementations must tolerate concurrent use.
type ResearchCache interface {
	Get(ctx context.Context, name string) (*domain.ResearchResult, bool, error)
	Set(ctx context.Context, name string, result *domain.ResearchResult) error
}
