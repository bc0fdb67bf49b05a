package postgres

import (
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// CompanyPostgres is a PostgreSQL implementation of repository.Repository[model.Company].
type CompanyPostgres struct {
	*table[model.Company]
}

// NewCompanyPostgres creates a new CompanyPostgres repository.
func NewCompanyPostgres(db *sql.DB) *CompanyPostgres {
	return &CompanyPostgres{&table[model.Company]{
		db:      db,
		name:    "companies",
		key:     "company_id",
		columns: []string{"company_id", "name", "email", "password", "address", "mobile_number"},
		orderBy: "created_at, company_id",
		search:  []string{"name", "email", "address"},
		values: func(c *model.Company) []any {
			return []any{c.CompanyID, c.Name, c.Email, c.Password, c.Address, c.MobileNumber}
		},
		scan: func(s scanner) (*model.Company, error) {
			var c model.Company
			if err := s.Scan(&c.CompanyID, &c.Name, &c.Email, &c.Password, &c.Address, &c.MobileNumber, &c.CreatedAt); err != nil {
				return nil, err
			}
			return &c, nil
		},
	}}
}

var _ repository.Repository[model.Company] = (*CompanyPostgres)(nil)
