package model

import (
	"encoding/json"
	"time"
)

// Settings holds the invoice header details of a company.
// AccountDetails is free-form JSON (bank accounts, UPI handles and so on).
type Settings struct {
	CompanyID      string          `json:"company_id"`
	CompanyName    string          `json:"company_name"`
	CompanyAddress string          `json:"company_address"`
	CompanyGST     string          `json:"company_gst"`
	AccountDetails json.RawMessage `json:"account_details"`
	CreatedAt      time.Time       `json:"created_at"`
}
