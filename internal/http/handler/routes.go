package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"billingapi/internal/model"
	"billingapi/internal/service"
)

// Services bundles the use cases the router serves.
type Services struct {
	Company  service.Resource[model.Company]
	User     service.Resource[model.User]
	Customer service.Resource[model.Customer]
	Item     service.Resource[model.Item]
	Quote    service.Resource[model.Quote]
	Invoice  service.Resource[model.Invoice]
	Payment  service.Resource[model.Payment]
	WriteOff service.Resource[model.WriteOff]
	Expense  service.Resource[model.Expense]
	Settings service.SettingsService
	Auth     service.AuthService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, log *zap.Logger) {
	app.Get("/", Root())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	app.Post("/auth/register", Register(svc.Auth, log))
	app.Post("/auth/login", Login(svc.Auth, log))

	mount(app, "company", "Company", newCompanyHandler(svc.Company, log))
	mount(app, "user", "User", newUserHandler(svc.User, log))
	mount(app, "customer", "Customer", newCustomerHandler(svc.Customer, log))
	mount(app, "item", "Item", newItemHandler(svc.Item, log))
	mount(app, "quote", "Quote", newQuoteHandler(svc.Quote, log))
	mount(app, "invoice", "Invoice", newInvoiceHandler(svc.Invoice, log))
	mount(app, "payment", "Payment", newPaymentHandler(svc.Payment, log))
	mount(app, "writeoff", "Writeoff", newWriteOffHandler(svc.WriteOff, log))
	mount(app, "expense", "Expense", newExpenseHandler(svc.Expense, log))

	settings := newSettingsHandler(svc.Settings, log)
	app.Get("/settings/company", settings.list)
	app.Post("/settings/company", settings.upsert)
	app.Put("/settings/company", fixed(msgInvalidInput))
	app.Delete("/settings/company", fixed(msgInvalidInput))
	app.Get("/settings/company/:id", settings.get)
	app.Put("/settings/company/:id", settings.update)
	app.Delete("/settings/company/:id", settings.remove)
}

// mount registers the keyed CRUD, page and filter routes of one resource:
//
//	/<name>Page, /<name>Page/:page, /filter<Title>, /filter<Title>/:text
//	/<name>/page, /<name>/page/:page, /<name>/filter, /<name>/filter/:text
//	/<name> (fixed 400), /<name>/:id
//
// Page and filter routes go first so they are not captured by /:id.
func mount[T any](app *fiber.App, name, title string, h *resourceHandler[T]) {
	app.Get("/"+name+"Page", h.pageQuery)
	app.Get("/"+name+"Page/:page", h.pagePath)
	app.Get("/filter"+title, fixed(msgInvalidSearch))
	app.Get("/filter"+title+"/:text", h.filter)

	g := app.Group("/" + name)
	g.Get("/page", h.pageQuery)
	g.Get("/page/:page", h.pagePath)
	g.Get("/filter", fixed(msgInvalidSearch))
	g.Get("/filter/:text", h.filter)

	for _, method := range []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete} {
		app.Add(method, "/"+name, h.missingID)
	}
	g.Get("/:id", h.get)
	g.Post("/:id", h.create)
	g.Put("/:id", h.update)
	g.Delete("/:id", h.remove)
}
