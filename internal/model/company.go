package model

import "time"

// Company is a billing tenant. Password holds a bcrypt hash and is never serialized.
type Company struct {
	CompanyID    string    `json:"company_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Address      string    `json:"address"`
	MobileNumber string    `json:"mobile_number"`
	CreatedAt    time.Time `json:"created_at"`
}
