package repository

import (
	"context"
	"errors"

	"billingapi/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and contain no business logic.

// ErrCountUnsupported is returned by Count when a store cannot count rows cheaply.
// Callers fall back to listing every row.
var ErrCountUnsupported = errors.New("count not supported")

// Repository is the single-table CRUD contract shared by every billing resource.
// Lookups of a missing key return sql.ErrNoRows.
type Repository[T any] interface {
	// FindByID returns the record with the given key.
	FindByID(ctx context.Context, id string) (*T, error)

	// List returns records in stored order. A zero Limit returns every row.
	List(ctx context.Context, pq PageQuery) ([]T, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Search returns records whose text columns contain text, case-insensitively.
	Search(ctx context.Context, text string) ([]T, error)

	// Create inserts rec and returns the stored row including server defaults.
	Create(ctx context.Context, rec *T) (*T, error)

	// Update overwrites every mutable column of the row keyed by rec's key.
	Update(ctx context.Context, rec *T) (*T, error)

	// Delete removes the row with the given key.
	Delete(ctx context.Context, id string) error
}

// EmailLookup is implemented by stores whose records carry a unique email.
type EmailLookup[T any] interface {
	FindByEmail(ctx context.Context, email string) (*T, error)
}

// UserRepository stores login accounts.
type UserRepository interface {
	Repository[model.User]
	EmailLookup[model.User]
}

// CustomerRepository stores customers.
type CustomerRepository interface {
	Repository[model.Customer]
	EmailLookup[model.Customer]
}

// SettingsRepository stores company settings. Upsert creates or replaces by company_id.
type SettingsRepository interface {
	Repository[model.Settings]
	Upsert(ctx context.Context, s *model.Settings) (*model.Settings, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
