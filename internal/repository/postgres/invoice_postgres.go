package postgres

import (
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// InvoicePostgres is a PostgreSQL implementation of repository.Repository[model.Invoice].
type InvoicePostgres struct {
	*table[model.Invoice]
}

// NewInvoicePostgres creates a new InvoicePostgres repository.
func NewInvoicePostgres(db *sql.DB) *InvoicePostgres {
	return &InvoicePostgres{&table[model.Invoice]{
		db:      db,
		name:    "invoices",
		key:     "invoice_id",
		columns: []string{"invoice_id", "invoice_number", "invoice_item", "payment_method", "total_amount"},
		orderBy: "created_at, invoice_id",
		search:  []string{"invoice_number", "invoice_item", "payment_method"},
		values: func(i *model.Invoice) []any {
			return []any{i.InvoiceID, i.InvoiceNumber, i.InvoiceItem, i.PaymentMethod, i.TotalAmount}
		},
		scan: func(s scanner) (*model.Invoice, error) {
			var i model.Invoice
			if err := s.Scan(&i.InvoiceID, &i.InvoiceNumber, &i.InvoiceItem, &i.PaymentMethod, &i.TotalAmount, &i.CreatedAt); err != nil {
				return nil, err
			}
			return &i, nil
		},
	}}
}

var _ repository.Repository[model.Invoice] = (*InvoicePostgres)(nil)
