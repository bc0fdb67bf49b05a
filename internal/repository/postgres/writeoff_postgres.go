package postgres

import (
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// WriteOffPostgres is a PostgreSQL implementation of repository.Repository[model.WriteOff].
type WriteOffPostgres struct {
	*table[model.WriteOff]
}

// NewWriteOffPostgres creates a new WriteOffPostgres repository.
func NewWriteOffPostgres(db *sql.DB) *WriteOffPostgres {
	return &WriteOffPostgres{&table[model.WriteOff]{
		db:      db,
		name:    "write_offs",
		key:     "write_off_id",
		columns: []string{"write_off_id", "invoice_id", "amount", "reason"},
		orderBy: "created_at, write_off_id",
		search:  []string{"invoice_id", "reason"},
		values: func(w *model.WriteOff) []any {
			return []any{w.WriteOffID, w.InvoiceID, w.Amount, w.Reason}
		},
		scan: func(s scanner) (*model.WriteOff, error) {
			var w model.WriteOff
			if err := s.Scan(&w.WriteOffID, &w.InvoiceID, &w.Amount, &w.Reason, &w.CreatedAt); err != nil {
				return nil, err
			}
			return &w, nil
		},
	}}
}

var _ repository.Repository[model.WriteOff] = (*WriteOffPostgres)(nil)
