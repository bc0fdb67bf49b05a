package mocks

import (
	"context"

	"billingapi/internal/model"
	"billingapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) List(ctx context.Context, pq repository.PageQuery) ([]T, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository[T]) Search(ctx context.Context, text string) ([]T, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, rec *T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Update(ctx context.Context, rec *T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// FindByEmail is only reachable through the user and customer repository interfaces.
func (m *MockRepository[T]) FindByEmail(ctx context.Context, email string) (*T, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// Upsert is only reachable through the settings repository interface.
func (m *MockRepository[T]) Upsert(ctx context.Context, rec *T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

var (
	_ repository.Repository[model.Item] = (*MockRepository[model.Item])(nil)
	_ repository.UserRepository         = (*MockRepository[model.User])(nil)
	_ repository.CustomerRepository     = (*MockRepository[model.Customer])(nil)
	_ repository.SettingsRepository     = (*MockRepository[model.Settings])(nil)
)
