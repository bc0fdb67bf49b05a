package model

import "time"

type Expense struct {
	ExpenseID   string    `json:"expense_id"`
	ExpenseName string    `json:"expense_name"`
	Amount      int64     `json:"amount"`
	ExpenseDate string    `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}
