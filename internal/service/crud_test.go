package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"billingapi/internal/model"
	"billingapi/internal/pagination"
	"billingapi/internal/repository"
	repoMocks "billingapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCRUD_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(m *repoMocks.MockRepository[model.Item])
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "found",
			id:   "5",
			setupMocks: func(m *repoMocks.MockRepository[model.Item]) {
				m.On("FindByID", ctx, "5").Return(&model.Item{ItemID: "5"}, nil)
			},
		},
		{
			name:       "empty id",
			id:         "",
			setupMocks: func(m *repoMocks.MockRepository[model.Item]) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "9",
			setupMocks: func(m *repoMocks.MockRepository[model.Item]) {
				m.On("FindByID", ctx, "9").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "db error",
			id:   "5",
			setupMocks: func(m *repoMocks.MockRepository[model.Item]) {
				m.On("FindByID", ctx, "5").Return(nil, errors.New("db down"))
			},
			wantErrMsg: "find item: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRepository[model.Item])
			tt.setupMocks(mRepo)

			svc := NewItemService(mRepo)
			got, err := svc.Get(ctx, tt.id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "5", got.ItemID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestCRUD_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores under the path id", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Item])
		mRepo.On("FindByID", ctx, "5").Return(nil, sql.ErrNoRows)
		mRepo.On("Create", ctx, mock.MatchedBy(func(i *model.Item) bool {
			return i.ItemID == "5" && i.ItemName == "Pen"
		})).Return(&model.Item{ItemID: "5", ItemName: "Pen"}, nil)

		got, err := NewItemService(mRepo).Create(ctx, "5", &model.Item{ItemID: "ignored", ItemName: "Pen"})

		require.NoError(t, err)
		assert.Equal(t, "5", got.ItemID)
		mRepo.AssertExpectations(t)
	})

	t.Run("duplicate id", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Item])
		mRepo.On("FindByID", ctx, "5").Return(&model.Item{ItemID: "5"}, nil)

		_, err := NewItemService(mRepo).Create(ctx, "5", &model.Item{})

		assert.ErrorIs(t, err, ErrAlreadyExists)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert error", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Item])
		mRepo.On("FindByID", ctx, "5").Return(nil, sql.ErrNoRows)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("constraint"))

		_, err := NewItemService(mRepo).Create(ctx, "5", &model.Item{})

		assert.EqualError(t, err, "create item: constraint")
	})

	t.Run("payment gets paid_at", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Payment])
		mRepo.On("FindByID", ctx, "p1").Return(nil, sql.ErrNoRows)
		mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.PaymentID == "p1" && !p.PaidAt.IsZero()
		})).Return(&model.Payment{PaymentID: "p1"}, nil)

		_, err := NewPaymentService(mRepo).Create(ctx, "p1", &model.Payment{InvoiceID: "i1", Amount: 100})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})
}

func TestCRUD_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies changes to the stored record", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Item])
		mRepo.On("FindByID", ctx, "5").Return(&model.Item{ItemID: "5", ItemName: "Pen", ItemPrice: 10}, nil)
		mRepo.On("Update", ctx, &model.Item{ItemID: "5", ItemName: "Pen", ItemPrice: 12}).
			Return(&model.Item{ItemID: "5", ItemName: "Pen", ItemPrice: 12}, nil)

		got, err := NewItemService(mRepo).Update(ctx, "5", func(i *model.Item) { i.ItemPrice = 12 })

		require.NoError(t, err)
		assert.Equal(t, int64(12), got.ItemPrice)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Item])
		mRepo.On("FindByID", ctx, "5").Return(nil, sql.ErrNoRows)

		_, err := NewItemService(mRepo).Update(ctx, "5", nil)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCRUD_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Quote])
		mRepo.On("FindByID", ctx, "q1").Return(&model.Quote{QuoteID: "q1"}, nil)
		mRepo.On("Delete", ctx, "q1").Return(nil)

		assert.NoError(t, NewQuoteService(mRepo).Delete(ctx, "q1"))
		mRepo.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Quote])
		mRepo.On("FindByID", ctx, "q1").Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, NewQuoteService(mRepo).Delete(ctx, "q1"), ErrNotFound)
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("vanished between lookup and delete", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Quote])
		mRepo.On("FindByID", ctx, "q1").Return(&model.Quote{QuoteID: "q1"}, nil)
		mRepo.On("Delete", ctx, "q1").Return(sql.ErrNoRows)

		assert.ErrorIs(t, NewQuoteService(mRepo).Delete(ctx, "q1"), ErrNotFound)
	})
}

func TestCRUD_Page(t *testing.T) {
	ctx := context.Background()
	invoices := []model.Invoice{{InvoiceID: "a"}, {InvoiceID: "b"}}

	t.Run("count then list", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Invoice])
		mRepo.On("Count", ctx).Return(2, nil)
		mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).Return(invoices, nil)

		page, err := NewInvoiceService(mRepo).Page(ctx, pagination.Params{Page: 1, Limit: 10})

		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalItems)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, invoices, page.Data)
	})

	t.Run("count unsupported falls back to listing", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Invoice])
		mRepo.On("Count", ctx).Return(0, repository.ErrCountUnsupported)
		mRepo.On("List", ctx, repository.PageQuery{}).Return(invoices, nil).Once()
		mRepo.On("List", ctx, repository.PageQuery{Limit: 1, Offset: 1}).Return(invoices[1:], nil).Once()

		page, err := NewInvoiceService(mRepo).Page(ctx, pagination.Params{Page: 2, Limit: 1})

		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalItems)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Data, 1)
		mRepo.AssertExpectations(t)
	})

	t.Run("count error", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Invoice])
		mRepo.On("Count", ctx).Return(0, errors.New("timeout"))

		_, err := NewInvoiceService(mRepo).Page(ctx, pagination.Params{Page: 1, Limit: 10})

		assert.EqualError(t, err, "count invoice: timeout")
	})
}

func TestCRUD_FilterAndAll(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRepository[model.Expense])
	mRepo.On("Search", ctx, "tea").Return(nil, nil)
	mRepo.On("List", ctx, repository.PageQuery{}).Return([]model.Expense{{ExpenseID: "e1"}}, nil)

	svc := NewExpenseService(mRepo)

	rows, err := svc.Filter(ctx, "tea")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
