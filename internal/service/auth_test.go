package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"billingapi/internal/auth"
	"billingapi/internal/model"
	repoMocks "billingapi/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(m *repoMocks.MockRepository[model.User]) (AuthService, *auth.TokenIssuer) {
	tokens := auth.NewTokenIssuer("secret", 24*time.Hour)
	return NewAuthService(m, prefixHasher{}, tokens), tokens
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with generated id", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByEmail", ctx, "a@b.co").Return(nil, sql.ErrNoRows)
		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			_, err := uuid.Parse(u.UserID)
			return err == nil && u.Password == "hashed:secret1" && u.Role == "admin"
		})).Return(&model.User{UserID: "generated", Email: "a@b.co"}, nil)

		svc, _ := newAuthService(mRepo)
		user, err := svc.Register(ctx, "a@b.co", "secret1", "admin")

		require.NoError(t, err)
		assert.Equal(t, "a@b.co", user.Email)
		mRepo.AssertExpectations(t)
	})

	t.Run("email registered", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByEmail", ctx, "a@b.co").Return(&model.User{UserID: "u1"}, nil)

		svc, _ := newAuthService(mRepo)
		_, err := svc.Register(ctx, "a@b.co", "secret1", "admin")

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("lookup failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByEmail", ctx, "a@b.co").Return(nil, errors.New("db down"))

		svc, _ := newAuthService(mRepo)
		_, err := svc.Register(ctx, "a@b.co", "secret1", "admin")

		assert.EqualError(t, err, "find user: db down")
	})
}

// countingHasher records how often each prefixHasher method runs.
type countingHasher struct {
	prefixHasher
	hashes, compares int
}

func (h *countingHasher) Hash(p string) (string, error) {
	h.hashes++
	return h.prefixHasher.Hash(p)
}

func (h *countingHasher) Compare(hash, p string) error {
	h.compares++
	return h.prefixHasher.Compare(hash, p)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{UserID: "u1", Email: "a@b.co", Password: "hashed:secret1"}

	t.Run("issues token", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByEmail", ctx, "a@b.co").Return(stored, nil)

		svc, tokens := newAuthService(mRepo)
		token, err := svc.Login(ctx, "a@b.co", "secret1")

		require.NoError(t, err)
		claims, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByEmail", ctx, "a@b.co").Return(stored, nil)

		svc, _ := newAuthService(mRepo)
		_, err := svc.Login(ctx, "a@b.co", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByEmail", ctx, "x@b.co").Return(nil, sql.ErrNoRows)

		svc, _ := newAuthService(mRepo)
		_, err := svc.Login(ctx, "x@b.co", "secret1")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email still compares a hash", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByEmail", ctx, "x@b.co").Return(nil, sql.ErrNoRows)

		hasher := &countingHasher{}
		svc := NewAuthService(mRepo, hasher, auth.NewTokenIssuer("secret", time.Hour))
		for i := 0; i < 2; i++ {
			_, err := svc.Login(ctx, "x@b.co", "secret1")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		}

		assert.Equal(t, 2, hasher.compares)
		assert.Equal(t, 1, hasher.hashes)
	})

	t.Run("lookup failure skips the comparison", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByEmail", ctx, "x@b.co").Return(nil, errors.New("db down"))

		hasher := &countingHasher{}
		svc := NewAuthService(mRepo, hasher, auth.NewTokenIssuer("secret", time.Hour))
		_, err := svc.Login(ctx, "x@b.co", "secret1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.Zero(t, hasher.compares)
	})
}
