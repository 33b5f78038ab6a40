package research

import (
	"context"
	"errors"

	"labelscan/internal/config"
	"labelscan/internal/domain"
	"labelscan/internal/port"
)

func init() {
	RegisterProvider("noop", func(*config.ResearcherConfig) (port.Researcher, error) {
		return NoopResearcher{}, nil
	})
}

// NoopResearcher answers every request with a provider failure. Used when no
// research provider is configured; unmatched ingredients then resolve as
// unknown.
type NoopResearcher struct{}

func (NoopResearcher) Research(_ context.Context, _ string) (*domain.ResearchResult, error) {
	return nil, NewFailure(domain.FailureProviderError, errors.New("research provider disabled"))
}
