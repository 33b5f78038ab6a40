package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labelscan/internal/domain"
)

// MockIngredientRepo is a mock implementation of port.IngredientRepository.
type MockIngredientRepo struct {
	mock.Mock
}

func (m *MockIngredientRepo) LoadAll(ctx context.Context) ([]domain.IngredientRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IngredientRecord), args.Error(1)
}
