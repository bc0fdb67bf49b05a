package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"billingapi/internal/auth"
	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// NewCompanyService hashes company passwords on write.
func NewCompanyService(repo repository.Repository[model.Company], hasher auth.PasswordHasher) *CRUD[model.Company] {
	return NewCRUD("company", repo, Hooks[model.Company]{
		SetKey: func(c *model.Company, id string) { c.CompanyID = id },
		BeforeCreate: func(_ context.Context, c *model.Company) error {
			return hashIfSet(hasher, &c.Password)
		},
		BeforeUpdate: func(_ context.Context, before, after *model.Company) error {
			if after.Password == before.Password {
				return nil
			}
			return hashIfSet(hasher, &after.Password)
		},
	})
}

// NewUserService keeps user emails unique and hashes passwords on write.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher) *CRUD[model.User] {
	email := func(u *model.User) string { return u.Email }
	key := func(u *model.User) string { return u.UserID }

	return NewCRUD("user", repo, Hooks[model.User]{
		SetKey: func(u *model.User, id string) { u.UserID = id },
		BeforeCreate: func(ctx context.Context, u *model.User) error {
			if err := ensureEmailFree[model.User](ctx, repo, u, email, key); err != nil {
				return err
			}
			return hashIfSet(hasher, &u.Password)
		},
		BeforeUpdate: func(ctx context.Context, before, after *model.User) error {
			if after.Email != before.Email {
				if err := ensureEmailFree[model.User](ctx, repo, after, email, key); err != nil {
					return err
				}
			}
			if after.Password == before.Password {
				return nil
			}
			return hashIfSet(hasher, &after.Password)
		},
	})
}

// NewCustomerService keeps customer emails unique.
func NewCustomerService(repo repository.CustomerRepository) *CRUD[model.Customer] {
	email := func(c *model.Customer) string { return c.Email }
	key := func(c *model.Customer) string { return c.CustomerID }

	return NewCRUD("customer", repo, Hooks[model.Customer]{
		SetKey: func(c *model.Customer, id string) { c.CustomerID = id },
		BeforeCreate: func(ctx context.Context, c *model.Customer) error {
			return ensureEmailFree[model.Customer](ctx, repo, c, email, key)
		},
		BeforeUpdate: func(ctx context.Context, before, after *model.Customer) error {
			if after.Email == before.Email {
				return nil
			}
			return ensureEmailFree[model.Customer](ctx, repo, after, email, key)
		},
	})
}

// NewItemService constructs the item use cases.
func NewItemService(repo repository.Repository[model.Item]) *CRUD[model.Item] {
	return NewCRUD("item", repo, Hooks[model.Item]{
		SetKey: func(i *model.Item, id string) { i.ItemID = id },
	})
}

// NewQuoteService constructs the quote use cases.
func NewQuoteService(repo repository.Repository[model.Quote]) *CRUD[model.Quote] {
	return NewCRUD("quote", repo, Hooks[model.Quote]{
		SetKey: func(q *model.Quote, id string) { q.QuoteID = id },
	})
}

// NewInvoiceService constructs the invoice use cases.
func NewInvoiceService(repo repository.Repository[model.Invoice]) *CRUD[model.Invoice] {
	return NewCRUD("invoice", repo, Hooks[model.Invoice]{
		SetKey: func(i *model.Invoice, id string) { i.InvoiceID = id },
	})
}

// NewPaymentService stamps paid_at when a payment is recorded.
func NewPaymentService(repo repository.Repository[model.Payment]) *CRUD[model.Payment] {
	return NewCRUD("payment", repo, Hooks[model.Payment]{
		SetKey: func(p *model.Payment, id string) { p.PaymentID = id },
		BeforeCreate: func(_ context.Context, p *model.Payment) error {
			if p.PaidAt.IsZero() {
				p.PaidAt = time.Now().UTC()
			}
			return nil
		},
	})
}

// NewWriteOffService constructs the write-off use cases.
func NewWriteOffService(repo repository.Repository[model.WriteOff]) *CRUD[model.WriteOff] {
	return NewCRUD("write-off", repo, Hooks[model.WriteOff]{
		SetKey: func(w *model.WriteOff, id string) { w.WriteOffID = id },
	})
}

// NewExpenseService constructs the expense use cases.
func NewExpenseService(repo repository.Repository[model.Expense]) *CRUD[model.Expense] {
	return NewCRUD("expense", repo, Hooks[model.Expense]{
		SetKey: func(e *model.Expense, id string) { e.ExpenseID = id },
	})
}

func ensureEmailFree[T any](ctx context.Context, lookup repository.EmailLookup[T], rec *T, email, key func(*T) string) error {
	found, err := lookup.FindByEmail(ctx, email(rec))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return fmt.Errorf("find by email: %w", err)
	case key(found) != key(rec):
		return ErrEmailTaken
	default:
		return nil
	}
}

// hashIfSet replaces a non-empty plaintext password with its hash.
func hashIfSet(hasher auth.PasswordHasher, password *string) error {
	if *password == "" {
		return nil
	}
	hash, err := hasher.Hash(*password)
	if err != nil {
		return err
	}
	*password = hash
	return nil
}
