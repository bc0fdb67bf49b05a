package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"billingapi/internal/model"
	repoMocks "billingapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// prefixHasher is a deterministic stand-in for bcrypt.
type prefixHasher struct{}

func (prefixHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func (prefixHasher) Compare(hash, p string) error {
	if hash != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByID", ctx, "u1").Return(nil, sql.ErrNoRows)
		mRepo.On("FindByEmail", ctx, "a@b.co").Return(nil, sql.ErrNoRows)
		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.UserID == "u1" && u.Password == "hashed:secret"
		})).Return(&model.User{UserID: "u1"}, nil)

		_, err := NewUserService(mRepo, prefixHasher{}).Create(ctx, "u1", &model.User{Email: "a@b.co", Password: "secret", Role: "admin"})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByID", ctx, "u2").Return(nil, sql.ErrNoRows)
		mRepo.On("FindByEmail", ctx, "a@b.co").Return(&model.User{UserID: "u1"}, nil)

		_, err := NewUserService(mRepo, prefixHasher{}).Create(ctx, "u2", &model.User{Email: "a@b.co", Password: "secret"})

		assert.ErrorIs(t, err, ErrEmailTaken)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{UserID: "u1", Email: "a@b.co", Password: "hashed:old", Role: "admin"}

	t.Run("unchanged password is not rehashed", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByID", ctx, "u1").Return(stored, nil)
		mRepo.On("Update", ctx, &model.User{UserID: "u1", Email: "a@b.co", Password: "hashed:old", Role: "viewer"}).
			Return(stored, nil)

		_, err := NewUserService(mRepo, prefixHasher{}).Update(ctx, "u1", func(u *model.User) { u.Role = "viewer" })

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
		mRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("new email must be free", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByID", ctx, "u1").Return(stored, nil)
		mRepo.On("FindByEmail", ctx, "c@d.co").Return(&model.User{UserID: "u9"}, nil)

		_, err := NewUserService(mRepo, prefixHasher{}).Update(ctx, "u1", func(u *model.User) { u.Email = "c@d.co" })

		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("new password is hashed", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.User])
		mRepo.On("FindByID", ctx, "u1").Return(stored, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Password == "hashed:new"
		})).Return(stored, nil)

		_, err := NewUserService(mRepo, prefixHasher{}).Update(ctx, "u1", func(u *model.User) { u.Password = "new" })

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})
}

func TestCustomerService_EmailTaken(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRepository[model.Customer])
	mRepo.On("FindByID", ctx, "c2").Return(nil, sql.ErrNoRows)
	mRepo.On("FindByEmail", ctx, "x@y.co").Return(&model.Customer{CustomerID: "c1"}, nil)

	_, err := NewCustomerService(mRepo).Create(ctx, "c2", &model.Customer{Email: "x@y.co"})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCompanyService_EmptyPasswordStaysEmpty(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRepository[model.Company])
	mRepo.On("FindByID", ctx, "1").Return(nil, sql.ErrNoRows)
	mRepo.On("Create", ctx, &model.Company{CompanyID: "1"}).Return(&model.Company{CompanyID: "1"}, nil)

	_, err := NewCompanyService(mRepo, prefixHasher{}).Create(ctx, "1", &model.Company{})

	require.NoError(t, err)
	mRepo.AssertExpectations(t)
}

func TestCompanyService_HashesChangedPassword(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRepository[model.Company])
	mRepo.On("FindByID", ctx, "1").Return(nil, sql.ErrNoRows).Once()
	mRepo.On("Create", ctx, &model.Company{CompanyID: "1", Password: "hashed:secret1"}).
		Return(&model.Company{CompanyID: "1"}, nil)

	svc := NewCompanyService(mRepo, prefixHasher{})
	_, err := svc.Create(ctx, "1", &model.Company{Password: "secret1"})
	require.NoError(t, err)

	stored := &model.Company{CompanyID: "1", Name: "Acme", Password: "hashed:secret1"}
	mRepo.On("FindByID", ctx, "1").Return(stored, nil)
	mRepo.On("Update", ctx, &model.Company{CompanyID: "1", Name: "Acme Ltd", Password: "hashed:secret1"}).
		Return(stored, nil).Once()

	_, err = svc.Update(ctx, "1", func(c *model.Company) { c.Name = "Acme Ltd" })
	require.NoError(t, err)

	mRepo.On("Update", ctx, &model.Company{CompanyID: "1", Name: "Acme", Password: "hashed:newpass"}).
		Return(stored, nil).Once()

	_, err = svc.Update(ctx, "1", func(c *model.Company) { c.Password = "newpass" })
	require.NoError(t, err)
	mRepo.AssertExpectations(t)
}

func TestPaymentService_StampsPaidAt(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRepository[model.Payment])
	mRepo.On("FindByID", ctx, "p1").Return(nil, sql.ErrNoRows)
	mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Payment) bool {
		return p.PaymentID == "p1" && !p.PaidAt.IsZero() && p.PaidAt.Location() == time.UTC
	})).Return(&model.Payment{PaymentID: "p1"}, nil)

	before := time.Now()
	in := &model.Payment{InvoiceID: "i1", Amount: 50}
	_, err := NewPaymentService(mRepo).Create(ctx, "p1", in)

	require.NoError(t, err)
	assert.False(t, in.PaidAt.Before(before.Add(-time.Second)))
	mRepo.AssertExpectations(t)
}

func TestSettingsService_Upsert(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRepository[model.Settings])
	in := &model.Settings{CompanyID: "1", CompanyName: "Acme"}
	mRepo.On("Upsert", ctx, in).Return(in, nil)

	svc := NewSettingsService(mRepo)

	got, err := svc.Upsert(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)

	_, err = svc.Upsert(ctx, &model.Settings{})
	assert.ErrorIs(t, err, ErrIDRequired)
}
