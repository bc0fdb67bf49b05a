package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"billingapi/internal/pagination"
	"billingapi/internal/repository"
)

// Resource defines the use cases shared by every keyed billing record.
type Resource[T any] interface {
	// Get returns the record stored under id.
	Get(ctx context.Context, id string) (*T, error)

	// Create stores rec under id. It fails with ErrAlreadyExists if id is taken.
	Create(ctx context.Context, id string, rec *T) (*T, error)

	// Update loads the record under id, lets apply modify a copy, and stores the result.
	Update(ctx context.Context, id string, apply func(*T)) (*T, error)

	// Delete removes the record under id.
	Delete(ctx context.Context, id string) error

	// Page returns one page of records in stored order together with the total count.
	Page(ctx context.Context, p pagination.Params) (*pagination.Page[T], error)

	// Filter returns records matching text. No match is an empty slice.
	Filter(ctx context.Context, text string) ([]T, error)

	// All returns every record in stored order.
	All(ctx context.Context) ([]T, error)
}

// Hooks customise CRUD for one resource.
type Hooks[T any] struct {
	// SetKey writes the identifier into a record before it is created.
	SetKey func(rec *T, id string)
	// BeforeCreate runs after the existence check and before the insert.
	BeforeCreate func(ctx context.Context, rec *T) error
	// BeforeUpdate runs after apply with the stored and the modified record.
	BeforeUpdate func(ctx context.Context, before, after *T) error
}

// CRUD is the generic Resource implementation over a single repository.
type CRUD[T any] struct {
	name  string
	repo  repository.Repository[T]
	hooks Hooks[T]
}

// NewCRUD constructs a CRUD service. name is used in wrapped errors.
func NewCRUD[T any](name string, repo repository.Repository[T], hooks Hooks[T]) *CRUD[T] {
	return &CRUD[T]{name: name, repo: repo, hooks: hooks}
}

var _ Resource[struct{}] = (*CRUD[struct{}])(nil)

func (s *CRUD[T]) Get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", s.name, err)
	}
	return rec, nil
}

func (s *CRUD[T]) Create(ctx context.Context, id string, rec *T) (*T, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.Get(ctx, id); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if s.hooks.SetKey != nil {
		s.hooks.SetKey(rec, id)
	}
	if s.hooks.BeforeCreate != nil {
		if err := s.hooks.BeforeCreate(ctx, rec); err != nil {
			return nil, err
		}
	}

	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.name, err)
	}
	return stored, nil
}

func (s *CRUD[T]) Update(ctx context.Context, id string, apply func(*T)) (*T, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	after := *before
	if apply != nil {
		apply(&after)
	}
	if s.hooks.SetKey != nil {
		s.hooks.SetKey(&after, id)
	}
	if s.hooks.BeforeUpdate != nil {
		if err := s.hooks.BeforeUpdate(ctx, before, &after); err != nil {
			return nil, err
		}
	}

	stored, err := s.repo.Update(ctx, &after)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", s.name, err)
	}
	return stored, nil
}

func (s *CRUD[T]) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", s.name, err)
	}
	return nil
}

// Page counts before listing. A repository without a cheap count is
// measured by listing every row.
func (s *CRUD[T]) Page(ctx context.Context, p pagination.Params) (*pagination.Page[T], error) {
	total, err := s.repo.Count(ctx)
	if errors.Is(err, repository.ErrCountUnsupported) {
		var all []T
		all, err = s.repo.List(ctx, repository.PageQuery{})
		total = len(all)
	}
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", s.name, err)
	}

	rows, err := s.repo.List(ctx, repository.PageQuery{Limit: p.Limit, Offset: p.Skip()})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return pagination.NewPage(rows, total, p), nil
}

func (s *CRUD[T]) Filter(ctx context.Context, text string) ([]T, error) {
	rows, err := s.repo.Search(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", s.name, err)
	}
	if rows == nil {
		rows = make([]T, 0)
	}
	return rows, nil
}

func (s *CRUD[T]) All(ctx context.Context) ([]T, error) {
	rows, err := s.repo.List(ctx, repository.PageQuery{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	if rows == nil {
		rows = make([]T, 0)
	}
	return rows, nil
}
