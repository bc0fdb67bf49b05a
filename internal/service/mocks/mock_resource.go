package mocks

import (
	"context"

	"billingapi/internal/model"
	"billingapi/internal/pagination"
	"billingapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockResource[T any] struct {
	mock.Mock
}

func (m *MockResource[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResource[T]) Create(ctx context.Context, id string, rec *T) (*T, error) {
	args := m.Called(ctx, id, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// Update applies fn to the record registered as the first return value before returning it.
func (m *MockResource[T]) Update(ctx context.Context, id string, fn func(*T)) (*T, error) {
	args := m.Called(ctx, id, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rec := *args.Get(0).(*T)
	if fn != nil {
		fn(&rec)
	}
	return &rec, args.Error(1)
}

func (m *MockResource[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockResource[T]) Page(ctx context.Context, p pagination.Params) (*pagination.Page[T], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[T]), args.Error(1)
}

func (m *MockResource[T]) Filter(ctx context.Context, text string) ([]T, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockResource[T]) All(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

// Upsert is only reachable through service.SettingsService.
func (m *MockResource[T]) Upsert(ctx context.Context, rec *T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, role string) (*model.User, error) {
	args := m.Called(ctx, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

var (
	_ service.Resource[model.Item] = (*MockResource[model.Item])(nil)
	_ service.SettingsService      = (*MockResource[model.Settings])(nil)
	_ service.AuthService          = (*MockAuthService)(nil)
)
