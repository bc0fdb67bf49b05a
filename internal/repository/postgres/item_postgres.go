package postgres

import (
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// ItemPostgres is a PostgreSQL implementation of repository.Repository[model.Item].
type ItemPostgres struct {
	*table[model.Item]
}

// NewItemPostgres creates a new ItemPostgres repository.
func NewItemPostgres(db *sql.DB) *ItemPostgres {
	return &ItemPostgres{&table[model.Item]{
		db:      db,
		name:    "items",
		key:     "item_id",
		columns: []string{"item_id", "item_name", "item_price", "item_quantity", "item_description", "gst", "company_id"},
		orderBy: "created_at, item_id",
		search:  []string{"item_name", "item_description"},
		values: func(i *model.Item) []any {
			return []any{i.ItemID, i.ItemName, i.ItemPrice, i.ItemQuantity, i.ItemDescription, i.GST, i.CompanyID}
		},
		scan: func(s scanner) (*model.Item, error) {
			var i model.Item
			if err := s.Scan(&i.ItemID, &i.ItemName, &i.ItemPrice, &i.ItemQuantity, &i.ItemDescription, &i.GST, &i.CompanyID, &i.CreatedAt); err != nil {
				return nil, err
			}
			return &i, nil
		},
	}}
}

var _ repository.Repository[model.Item] = (*ItemPostgres)(nil)
