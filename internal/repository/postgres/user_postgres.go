package postgres

import (
	"context"
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	*table[model.User]
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{&table[model.User]{
		db:      db,
		name:    "users",
		key:     "user_id",
		columns: []string{"user_id", "email", "password", "role"},
		orderBy: "created_at, user_id",
		search:  []string{"email", "role"},
		values: func(u *model.User) []any {
			return []any{u.UserID, u.Email, u.Password, u.Role}
		},
		scan: func(s scanner) (*model.User, error) {
			var u model.User
			if err := s.Scan(&u.UserID, &u.Email, &u.Password, &u.Role, &u.CreatedAt); err != nil {
				return nil, err
			}
			return &u, nil
		},
	}}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// FindByEmail fetches the account registered under email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findBy(ctx, "email", email)
}
