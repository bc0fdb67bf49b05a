package model

import "time"

// Item is a sellable product. Prices are whole currency units.
type Item struct {
	ItemID          string    `json:"item_id"`
	ItemName        string    `json:"item_name"`
	ItemPrice       int64     `json:"item_price"`
	ItemQuantity    int64     `json:"item_quantity"`
	ItemDescription string    `json:"item_description"`
	GST             int64     `json:"gst"`
	CompanyID       string    `json:"company_id"`
	CreatedAt       time.Time `json:"created_at"`
}
