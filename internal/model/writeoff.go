package model

import "time"

// WriteOff records an uncollectable amount on an invoice.
type WriteOff struct {
	WriteOffID string    `json:"write_off_id"`
	InvoiceID  string    `json:"invoice_id"`
	Amount     int64     `json:"amount"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
