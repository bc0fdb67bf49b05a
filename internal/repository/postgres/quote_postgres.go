package postgres

import (
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// QuotePostgres is a PostgreSQL implementation of repository.Repository[model.Quote].
type QuotePostgres struct {
	*table[model.Quote]
}

// NewQuotePostgres creates a new QuotePostgres repository.
func NewQuotePostgres(db *sql.DB) *QuotePostgres {
	return &QuotePostgres{&table[model.Quote]{
		db:      db,
		name:    "quotes",
		key:     "quote_id",
		columns: []string{"quote_id", "quote_number", "quote_item", "total_amount"},
		orderBy: "created_at, quote_id",
		search:  []string{"quote_number", "quote_item"},
		values: func(q *model.Quote) []any {
			return []any{q.QuoteID, q.QuoteNumber, q.QuoteItem, q.TotalAmount}
		},
		scan: func(s scanner) (*model.Quote, error) {
			var q model.Quote
			if err := s.Scan(&q.QuoteID, &q.QuoteNumber, &q.QuoteItem, &q.TotalAmount, &q.CreatedAt); err != nil {
				return nil, err
			}
			return &q, nil
		},
	}}
}

var _ repository.Repository[model.Quote] = (*QuotePostgres)(nil)
