package model

import "time"

// Payment records money received against an invoice. InvoiceID is not checked for existence.
type Payment struct {
	PaymentID string    `json:"payment_id"`
	InvoiceID string    `json:"invoice_id"`
	Amount    int64     `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}
