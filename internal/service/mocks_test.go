package service

import (
	"context"

	"github.com/phrazzld/keysfinder-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCatalogStore mocks the store.CatalogStore interface
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) CountKeyboardsByName(ctx context.Context, term string) (int64, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogStore) SearchKeyboardsByName(
	ctx context.Context,
	term string,
	limit, offset int64,
) ([]domain.Keyboard, error) {
	args := m.Called(ctx, term, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Keyboard), args.Error(1)
}

func (m *MockCatalogStore) CountKeyboards(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogStore) ListKeyboards(ctx context.Context, limit, offset int64) ([]domain.Keyboard, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Keyboard), args.Error(1)
}

func (m *MockCatalogStore) CountDetailsByKeyboardID(ctx context.Context, keyboardID int64) (int64, error) {
	args := m.Called(ctx, keyboardID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogStore) RandomKeyboards(ctx context.Context, n int) ([]domain.Keyboard, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Keyboard), args.Error(1)
}

func (m *MockCatalogStore) VariantsByKeyboardID(
	ctx context.Context,
	keyboardID int64,
) ([]domain.KeyboardVariant, error) {
	args := m.Called(ctx, keyboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KeyboardVariant), args.Error(1)
}

func (m *MockCatalogStore) DetailsByKeyboardID(
	ctx context.Context,
	keyboardID int64,
) ([]domain.KeyboardDetail, error) {
	args := m.Called(ctx, keyboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KeyboardDetail), args.Error(1)
}

func (m *MockCatalogStore) ComparisonsByDetailID(
	ctx context.Context,
	detailID int64,
) ([]domain.ComparisonEntry, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ComparisonEntry), args.Error(1)
}

func (m *MockCatalogStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
