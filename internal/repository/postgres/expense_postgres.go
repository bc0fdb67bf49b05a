package postgres

import (
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// ExpensePostgres is a PostgreSQL implementation of repository.Repository[model.Expense].
// Expenses list newest first.
type ExpensePostgres struct {
	*table[model.Expense]
}

// NewExpensePostgres creates a new ExpensePostgres repository.
func NewExpensePostgres(db *sql.DB) *ExpensePostgres {
	return &ExpensePostgres{&table[model.Expense]{
		db:      db,
		name:    "expenses",
		key:     "expense_id",
		columns: []string{"expense_id", "expense_name", "amount", "expense_date"},
		orderBy: "created_at DESC, expense_id DESC",
		search:  []string{"expense_name", "expense_date"},
		values: func(e *model.Expense) []any {
			return []any{e.ExpenseID, e.ExpenseName, e.Amount, e.ExpenseDate}
		},
		scan: func(s scanner) (*model.Expense, error) {
			var e model.Expense
			if err := s.Scan(&e.ExpenseID, &e.ExpenseName, &e.Amount, &e.ExpenseDate, &e.CreatedAt); err != nil {
				return nil, err
			}
			return &e, nil
		},
	}}
}

var _ repository.Repository[model.Expense] = (*ExpensePostgres)(nil)
