package handler

import (
	"go.uber.org/zap"

	"billingapi/internal/model"
	"billingapi/internal/pagination"
	"billingapi/internal/service"
)

// standardMessages builds the "<Name> created successfully" family.
func standardMessages(name, missingID, pageRequired string) Messages {
	return Messages{
		MissingID:    missingID,
		NotFound:     name + " not found",
		Exists:       name + " already exists",
		Created:      name + " created successfully",
		Updated:      name + " updated successfully",
		Deleted:      name + " deleted successfully",
		PageRequired: pageRequired,
	}
}

var (
	cappedRules = pagination.Rules{MaxLimit: 100, Message: msgInvalidParams}
	joinedRules = pagination.Rules{MaxLimit: 100}
)

func newCompanyHandler(svc service.Resource[model.Company], log *zap.Logger) *resourceHandler[model.Company] {
	return &resourceHandler[model.Company]{
		svc:         svc,
		log:         log,
		msg:         standardMessages("Company", "Please provide valid company_id", msgInvalidParams),
		rules:       cappedRules,
		single:      true,
		emptyCreate: true,
		emptyUpdate: true,
		newCreate:   func() createInput[model.Company] { return &companyInput{} },
		newUpdate:   func() updateInput[model.Company] { return &companyInput{} },
	}
}

func newUserHandler(svc service.Resource[model.User], log *zap.Logger) *resourceHandler[model.User] {
	return &resourceHandler[model.User]{
		svc:         svc,
		log:         log,
		msg:         standardMessages("User", "Please provide valid user_id", "Please provide valid page"),
		rules:       pagination.Rules{MaxLimit: 100, Message: "Please provide valid page"},
		single:      true,
		bodyErrors:  true,
		emptyUpdate: true,
		newCreate:   func() createInput[model.User] { return &userCreate{} },
		newUpdate:   func() updateInput[model.User] { return &userUpdate{} },
	}
}

func newCustomerHandler(svc service.Resource[model.Customer], log *zap.Logger) *resourceHandler[model.Customer] {
	return &resourceHandler[model.Customer]{
		svc:       svc,
		log:       log,
		msg:       standardMessages("Customer", msgInvalidInput, msgInvalidParams),
		rules:     pagination.Rules{Message: msgInvalidParams},
		newCreate: func() createInput[model.Customer] { return &customerCreate{} },
		newUpdate: func() updateInput[model.Customer] { return &customerUpdate{} },
	}
}

func newItemHandler(svc service.Resource[model.Item], log *zap.Logger) *resourceHandler[model.Item] {
	return &resourceHandler[model.Item]{
		svc:         svc,
		log:         log,
		msg:         standardMessages("Item", "Please provide valid item_id", "Please provide valid page"),
		rules:       pagination.Rules{MaxLimit: 100, Message: "Please provide valid page"},
		single:      true,
		emptyCreate: true,
		emptyUpdate: true,
		newCreate:   func() createInput[model.Item] { return &itemInput{} },
		newUpdate:   func() updateInput[model.Item] { return &itemInput{} },
	}
}

func newQuoteHandler(svc service.Resource[model.Quote], log *zap.Logger) *resourceHandler[model.Quote] {
	return &resourceHandler[model.Quote]{
		svc:         svc,
		log:         log,
		msg:         standardMessages("Quote", msgInvalidInput, msgInvalidParams),
		rules:       joinedRules,
		bodyErrors:  true,
		emptyUpdate: true,
		newCreate:   func() createInput[model.Quote] { return &quoteCreate{} },
		newUpdate:   func() updateInput[model.Quote] { return &quoteUpdate{} },
	}
}

func newInvoiceHandler(svc service.Resource[model.Invoice], log *zap.Logger) *resourceHandler[model.Invoice] {
	return &resourceHandler[model.Invoice]{
		svc:         svc,
		log:         log,
		msg:         standardMessages("Invoice", msgInvalidInput, msgInvalidParams),
		rules:       joinedRules,
		emptyUpdate: true,
		newCreate:   func() createInput[model.Invoice] { return &invoiceCreate{} },
		newUpdate:   func() updateInput[model.Invoice] { return &invoiceUpdate{} },
	}
}

func newPaymentHandler(svc service.Resource[model.Payment], log *zap.Logger) *resourceHandler[model.Payment] {
	msg := standardMessages("Payment", msgInvalidInput, msgInvalidParams)
	msg.Created = "Payment recorded successfully"
	return &resourceHandler[model.Payment]{
		svc:         svc,
		log:         log,
		msg:         msg,
		rules:       cappedRules,
		emptyUpdate: true,
		newCreate:   func() createInput[model.Payment] { return &paymentCreate{} },
		newUpdate:   func() updateInput[model.Payment] { return &paymentUpdate{} },
	}
}

func newWriteOffHandler(svc service.Resource[model.WriteOff], log *zap.Logger) *resourceHandler[model.WriteOff] {
	msg := standardMessages("Write-off", msgInvalidInput, msgInvalidParams)
	msg.Created = "Write-off recorded successfully"
	return &resourceHandler[model.WriteOff]{
		svc:       svc,
		log:       log,
		msg:       msg,
		rules:     cappedRules,
		newCreate: func() createInput[model.WriteOff] { return &writeOffCreate{} },
		newUpdate: func() updateInput[model.WriteOff] { return &writeOffUpdate{} },
	}
}

func newExpenseHandler(svc service.Resource[model.Expense], log *zap.Logger) *resourceHandler[model.Expense] {
	return &resourceHandler[model.Expense]{
		svc:         svc,
		log:         log,
		msg:         standardMessages("Expense", msgInvalidInput, msgInvalidParams),
		rules:       pagination.Rules{Message: msgInvalidParams},
		emptyUpdate: true,
		newCreate:   func() createInput[model.Expense] { return &expenseCreate{} },
		newUpdate:   func() updateInput[model.Expense] { return &expenseUpdate{} },
	}
}
