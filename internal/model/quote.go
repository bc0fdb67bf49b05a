package model

import "time"

type Quote struct {
	QuoteID     string    `json:"quote_id"`
	QuoteNumber string    `json:"quote_number"`
	QuoteItem   string    `json:"quote_item"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
