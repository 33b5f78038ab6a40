package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labelscan/internal/domain"
)

// MockResearcher is a mock implementation of port.Researcher.
type MockResearcher struct {
	mock.Mock
}

func (m *MockResearcher) Research(ctx context.Context, ingredientName string) (*domain.ResearchResult, error) {
	args := m.Called(ctx, ingredientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResearchResult), args.Error(1)
}
