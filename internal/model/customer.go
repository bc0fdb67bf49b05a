package model

import "time"

type Customer struct {
	CustomerID   string    `json:"customer_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	MobileNumber string    `json:"mobile_number"`
	CustomerGST  string    `json:"customer_gst"`
	CreatedAt    time.Time `json:"created_at"`
}
