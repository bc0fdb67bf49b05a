package postgres

import (
	"context"
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// CustomerPostgres is a PostgreSQL implementation of repository.CustomerRepository.
type CustomerPostgres struct {
	*table[model.Customer]
}

// NewCustomerPostgres creates a new CustomerPostgres repository.
func NewCustomerPostgres(db *sql.DB) *CustomerPostgres {
	return &CustomerPostgres{&table[model.Customer]{
		db:      db,
		name:    "customers",
		key:     "customer_id",
		columns: []string{"customer_id", "name", "email", "address", "mobile_number", "customer_gst"},
		orderBy: "created_at, customer_id",
		search:  []string{"name", "email", "customer_gst"},
		values: func(c *model.Customer) []any {
			return []any{c.CustomerID, c.Name, c.Email, c.Address, c.MobileNumber, c.CustomerGST}
		},
		scan: func(s scanner) (*model.Customer, error) {
			var c model.Customer
			if err := s.Scan(&c.CustomerID, &c.Name, &c.Email, &c.Address, &c.MobileNumber, &c.CustomerGST, &c.CreatedAt); err != nil {
				return nil, err
			}
			return &c, nil
		},
	}}
}

var _ repository.CustomerRepository = (*CustomerPostgres)(nil)

// FindByEmail fetches the customer registered under email.
func (r *CustomerPostgres) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.findBy(ctx, "email", email)
}
