package postgres

import (
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// PaymentPostgres is a PostgreSQL implementation of repository.Repository[model.Payment].
type PaymentPostgres struct {
	*table[model.Payment]
}

// NewPaymentPostgres creates a new PaymentPostgres repository.
func NewPaymentPostgres(db *sql.DB) *PaymentPostgres {
	return &PaymentPostgres{&table[model.Payment]{
		db:      db,
		name:    "payments",
		key:     "payment_id",
		columns: []string{"payment_id", "invoice_id", "amount", "paid_at"},
		orderBy: "created_at, payment_id",
		search:  []string{"invoice_id", "payment_id"},
		values: func(p *model.Payment) []any {
			return []any{p.PaymentID, p.InvoiceID, p.Amount, p.PaidAt}
		},
		scan: func(s scanner) (*model.Payment, error) {
			var p model.Payment
			if err := s.Scan(&p.PaymentID, &p.InvoiceID, &p.Amount, &p.PaidAt, &p.CreatedAt); err != nil {
				return nil, err
			}
			return &p, nil
		},
	}}
}

var _ repository.Repository[model.Payment] = (*PaymentPostgres)(nil)
