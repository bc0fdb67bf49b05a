package handler

import (
	"encoding/json"

	"billingapi/internal/model"
)

// setIf copies *src into *dst when the field was sent.
func setIf[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

func valueOr[V any](src *V, def V) V {
	if src != nil {
		return *src
	}
	return def
}

// companyInput serves both POST and PUT. Every field is optional; absent
// fields are stored empty on create.
type companyInput struct {
	Name         *string `json:"name" validate:"omitnil,min=1" msg:"Company name is required"`
	Email        *string `json:"email" validate:"omitnil,email" msg:"Invalid email format"`
	Password     *string `json:"password" validate:"omitnil,min=6,maxbytes=72" msg:"Password must be at least 6 characters" msg_maxbytes:"Password must be at most 72 bytes"`
	Address      *string `json:"address" validate:"omitnil,min=1" msg:"Address is required"`
	MobileNumber *string `json:"mobile_number" validate:"omitnil,min=10" msg:"Mobile number must be at least 10 digits"`
}

func (in *companyInput) record(id string) *model.Company {
	return &model.Company{
		CompanyID:    id,
		Name:         valueOr(in.Name, ""),
		Email:        valueOr(in.Email, ""),
		Password:     valueOr(in.Password, ""),
		Address:      valueOr(in.Address, ""),
		MobileNumber: valueOr(in.MobileNumber, ""),
	}
}

func (in *companyInput) apply(c *model.Company) {
	setIf(&c.Name, in.Name)
	setIf(&c.Email, in.Email)
	setIf(&c.Password, in.Password)
	setIf(&c.Address, in.Address)
	setIf(&c.MobileNumber, in.MobileNumber)
}

type userCreate struct {
	Email    string `json:"email" validate:"required,email" msg:"Invalid email format"`
	Password string `json:"password" validate:"min=6,maxbytes=72" msg:"Password must be at least 6 characters" msg_maxbytes:"Password must be at most 72 bytes"`
	Role     string `json:"role" validate:"required" msg:"Role is required"`
}

func (in *userCreate) record(id string) *model.User {
	return &model.User{UserID: id, Email: in.Email, Password: in.Password, Role: in.Role}
}

type userUpdate struct {
	Email    *string `json:"email" validate:"omitnil,email" msg:"Invalid email format"`
	Password *string `json:"password" validate:"omitnil,min=6,maxbytes=72" msg:"Password must be at least 6 characters" msg_maxbytes:"Password must be at most 72 bytes"`
	Role     *string `json:"role" validate:"omitnil,min=1" msg:"Role is required"`
}

func (in *userUpdate) apply(u *model.User) {
	setIf(&u.Email, in.Email)
	setIf(&u.Password, in.Password)
	setIf(&u.Role, in.Role)
}

type customerCreate struct {
	Name         string `json:"name" validate:"required" msg:"Customer name is required"`
	Email        string `json:"email" validate:"required,email" msg:"Invalid email format"`
	Address      string `json:"address" validate:"required" msg:"Address is required"`
	MobileNumber string `json:"mobile_number" validate:"min=10" msg:"Mobile number must be at least 10 digits"`
	CustomerGST  string `json:"customer_gst" validate:"required" msg:"Customer GST is required"`
}

func (in *customerCreate) record(id string) *model.Customer {
	return &model.Customer{
		CustomerID:   id,
		Name:         in.Name,
		Email:        in.Email,
		Address:      in.Address,
		MobileNumber: in.MobileNumber,
		CustomerGST:  in.CustomerGST,
	}
}

type customerUpdate struct {
	Name         *string `json:"name" validate:"omitnil,min=1" msg:"Customer name is required"`
	Email        *string `json:"email" validate:"omitnil,email" msg:"Invalid email format"`
	Address      *string `json:"address" validate:"omitnil,min=1" msg:"Address is required"`
	MobileNumber *string `json:"mobile_number" validate:"omitnil,min=10" msg:"Mobile number must be at least 10 digits"`
	CustomerGST  *string `json:"customer_gst" validate:"omitnil,min=1" msg:"Customer GST is required"`
}

func (in *customerUpdate) apply(c *model.Customer) {
	setIf(&c.Name, in.Name)
	setIf(&c.Email, in.Email)
	setIf(&c.Address, in.Address)
	setIf(&c.MobileNumber, in.MobileNumber)
	setIf(&c.CustomerGST, in.CustomerGST)
}

// itemInput serves both POST and PUT. Absent fields take defaults on create.
type itemInput struct {
	ItemName        *string `json:"item_name" validate:"omitnil,min=1" msg:"Item name is required"`
	ItemPrice       *int64  `json:"item_price" validate:"omitnil,min=0" msg:"Item price must be non-negative"`
	ItemQuantity    *int64  `json:"item_quantity" validate:"omitnil,min=0" msg:"Item quantity must be non-negative"`
	ItemDescription *string `json:"item_description"`
	GST             *int64  `json:"gst" validate:"omitnil,min=0" msg:"GST must be non-negative"`
	CompanyID       *string `json:"company_id" validate:"omitnil,min=1" msg:"Company ID is required"`
}

func (in *itemInput) record(id string) *model.Item {
	return &model.Item{
		ItemID:          id,
		ItemName:        valueOr(in.ItemName, "Item "+id),
		ItemPrice:       valueOr(in.ItemPrice, 0),
		ItemQuantity:    valueOr(in.ItemQuantity, 0),
		ItemDescription: valueOr(in.ItemDescription, ""),
		GST:             valueOr(in.GST, 0),
		CompanyID:       valueOr(in.CompanyID, "1"),
	}
}

func (in *itemInput) apply(i *model.Item) {
	setIf(&i.ItemName, in.ItemName)
	setIf(&i.ItemPrice, in.ItemPrice)
	setIf(&i.ItemQuantity, in.ItemQuantity)
	setIf(&i.ItemDescription, in.ItemDescription)
	setIf(&i.GST, in.GST)
	setIf(&i.CompanyID, in.CompanyID)
}

type quoteCreate struct {
	QuoteNumber string   `json:"quote_number" validate:"required" msg:"Quote number is required"`
	QuoteItem   string   `json:"quote_item" validate:"required" msg:"Quote item is required"`
	TotalAmount *float64 `json:"total_amount" validate:"required,min=0" msg:"Total amount must be non-negative"`
}

func (in *quoteCreate) record(id string) *model.Quote {
	return &model.Quote{QuoteID: id, QuoteNumber: in.QuoteNumber, QuoteItem: in.QuoteItem, TotalAmount: *in.TotalAmount}
}

type quoteUpdate struct {
	QuoteNumber *string  `json:"quote_number" validate:"omitnil,min=1" msg:"Quote number is required"`
	QuoteItem   *string  `json:"quote_item" validate:"omitnil,min=1" msg:"Quote item is required"`
	TotalAmount *float64 `json:"total_amount" validate:"omitnil,min=0" msg:"Total amount must be non-negative"`
}

func (in *quoteUpdate) apply(q *model.Quote) {
	setIf(&q.QuoteNumber, in.QuoteNumber)
	setIf(&q.QuoteItem, in.QuoteItem)
	setIf(&q.TotalAmount, in.TotalAmount)
}

type invoiceCreate struct {
	InvoiceNumber string   `json:"invoice_number" validate:"required" msg:"Invoice number is required"`
	InvoiceItem   string   `json:"invoice_item" validate:"required" msg:"Invoice item is required"`
	PaymentMethod string   `json:"payment_method" validate:"required" msg:"Payment method is required"`
	TotalAmount   *float64 `json:"total_amount" validate:"required,min=0" msg:"Total amount must be non-negative"`
}

func (in *invoiceCreate) record(id string) *model.Invoice {
	return &model.Invoice{
		InvoiceID:     id,
		InvoiceNumber: in.InvoiceNumber,
		InvoiceItem:   in.InvoiceItem,
		PaymentMethod: in.PaymentMethod,
		TotalAmount:   *in.TotalAmount,
	}
}

type invoiceUpdate struct {
	InvoiceNumber *string  `json:"invoice_number" validate:"omitnil,min=1" msg:"Invoice number is required"`
	InvoiceItem   *string  `json:"invoice_item" validate:"omitnil,min=1" msg:"Invoice item is required"`
	PaymentMethod *string  `json:"payment_method" validate:"omitnil,min=1" msg:"Payment method is required"`
	TotalAmount   *float64 `json:"total_amount" validate:"omitnil,min=0" msg:"Total amount must be non-negative"`
}

func (in *invoiceUpdate) apply(i *model.Invoice) {
	setIf(&i.InvoiceNumber, in.InvoiceNumber)
	setIf(&i.InvoiceItem, in.InvoiceItem)
	setIf(&i.PaymentMethod, in.PaymentMethod)
	setIf(&i.TotalAmount, in.TotalAmount)
}

type paymentCreate struct {
	InvoiceID string `json:"invoice_id" validate:"required" msg:"Invoice ID is required"`
	Amount    *int64 `json:"amount" validate:"required,min=0" msg:"Amount must be non-negative"`
}

func (in *paymentCreate) record(id string) *model.Payment {
	return &model.Payment{PaymentID: id, InvoiceID: in.InvoiceID, Amount: *in.Amount}
}

type paymentUpdate struct {
	InvoiceID *string `json:"invoice_id" validate:"omitnil,min=1" msg:"Invoice ID is required"`
	Amount    *int64  `json:"amount" validate:"omitnil,min=0" msg:"Amount must be non-negative"`
}

func (in *paymentUpdate) apply(p *model.Payment) {
	setIf(&p.InvoiceID, in.InvoiceID)
	setIf(&p.Amount, in.Amount)
}

type writeOffCreate struct {
	InvoiceID string `json:"invoice_id" validate:"required" msg:"Invoice ID is required"`
	Amount    *int64 `json:"amount" validate:"required,min=0" msg:"Amount must be non-negative"`
	Reason    string `json:"reason" validate:"required" msg:"Reason is required"`
}

func (in *writeOffCreate) record(id string) *model.WriteOff {
	return &model.WriteOff{WriteOffID: id, InvoiceID: in.InvoiceID, Amount: *in.Amount, Reason: in.Reason}
}

type writeOffUpdate struct {
	InvoiceID *string `json:"invoice_id" validate:"omitnil,min=1" msg:"Invoice ID is required"`
	Amount    *int64  `json:"amount" validate:"omitnil,min=0" msg:"Amount must be non-negative"`
	Reason    *string `json:"reason" validate:"omitnil,min=1" msg:"Reason is required"`
}

func (in *writeOffUpdate) apply(w *model.WriteOff) {
	setIf(&w.InvoiceID, in.InvoiceID)
	setIf(&w.Amount, in.Amount)
	setIf(&w.Reason, in.Reason)
}

type expenseCreate struct {
	ExpenseName string `json:"expense_name" validate:"required" msg:"Expense name is required"`
	Amount      *int64 `json:"amount" validate:"required,min=0" msg:"Amount must be non-negative"`
	ExpenseDate string `json:"expense_date" validate:"required" msg:"Expense date is required"`
}

func (in *expenseCreate) record(id string) *model.Expense {
	return &model.Expense{ExpenseID: id, ExpenseName: in.ExpenseName, Amount: *in.Amount, ExpenseDate: in.ExpenseDate}
}

type expenseUpdate struct {
	ExpenseName *string `json:"expense_name" validate:"omitnil,min=1" msg:"Expense name is required"`
	Amount      *int64  `json:"amount" validate:"omitnil,min=0" msg:"Amount must be non-negative"`
	ExpenseDate *string `json:"expense_date" validate:"omitnil,min=1" msg:"Expense date is required"`
}

func (in *expenseUpdate) apply(e *model.Expense) {
	setIf(&e.ExpenseName, in.ExpenseName)
	setIf(&e.Amount, in.Amount)
	setIf(&e.ExpenseDate, in.ExpenseDate)
}

type settingsCreate struct {
	CompanyID      string          `json:"company_id" validate:"required" msg:"Company ID is required"`
	CompanyName    string          `json:"company_name" validate:"required" msg:"Company name is required"`
	CompanyAddress string          `json:"company_address" validate:"required" msg:"Company address is required"`
	CompanyGST     string          `json:"company_gst" validate:"required" msg:"Company GST is required"`
	AccountDetails json.RawMessage `json:"account_details"`
}

func (in *settingsCreate) record(string) *model.Settings {
	return &model.Settings{
		CompanyID:      in.CompanyID,
		CompanyName:    in.CompanyName,
		CompanyAddress: in.CompanyAddress,
		CompanyGST:     in.CompanyGST,
		AccountDetails: in.AccountDetails,
	}
}

// settingsUpdate ignores company_id; the path decides which row changes.
type settingsUpdate struct {
	CompanyName    *string         `json:"company_name" validate:"omitnil,min=1" msg:"Company name is required"`
	CompanyAddress *string         `json:"company_address" validate:"omitnil,min=1" msg:"Company address is required"`
	CompanyGST     *string         `json:"company_gst" validate:"omitnil,min=1" msg:"Company GST is required"`
	AccountDetails json.RawMessage `json:"account_details"`
}

func (in *settingsUpdate) apply(s *model.Settings) {
	setIf(&s.CompanyName, in.CompanyName)
	setIf(&s.CompanyAddress, in.CompanyAddress)
	setIf(&s.CompanyGST, in.CompanyGST)
	if in.AccountDetails != nil {
		s.AccountDetails = in.AccountDetails
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"email" msg:"Invalid email format"`
	Password string `json:"password" validate:"min=6,maxbytes=72" msg:"Password must be at least 6 characters" msg_maxbytes:"Password must be at most 72 bytes"`
	Role     string `json:"role" validate:"required" msg:"Role is required"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
