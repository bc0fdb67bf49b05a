package handler

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"billingapi/internal/pagination"
	"billingapi/internal/service"
	"billingapi/internal/validation"
)

// Messages are the literal client-facing strings of one resource.
type Messages struct {
	MissingID string
	NotFound  string
	Exists    string
	Created   string
	Updated   string
	Deleted   string
	// PageRequired answers /xPage and /x/page when page or limit is absent.
	PageRequired string
}

// createInput is a decoded POST body. record builds the row stored under id.
type createInput[T any] interface {
	record(id string) *T
}

// updateInput is a decoded PUT body. apply copies the fields that were sent.
type updateInput[T any] interface {
	apply(rec *T)
}

// resourceHandler serves the keyed CRUD, page and filter routes of one resource.
type resourceHandler[T any] struct {
	svc   service.Resource[T]
	log   *zap.Logger
	msg   Messages
	rules pagination.Rules

	// single renders GET as the bare record instead of a one-element array.
	single bool
	// bodyErrors returns joined validator messages instead of msgInvalidInput.
	bodyErrors bool
	// emptyCreate accepts a POST without a body and lets the input fill defaults.
	emptyCreate bool
	// emptyUpdate accepts a PUT without a body as a no-op.
	emptyUpdate bool

	newCreate func() createInput[T]
	newUpdate func() updateInput[T]
}

// idParam reads the record identifier from the first route parameter.
// Values Postgres cannot store as text (invalid UTF-8, NUL) read as empty.
func idParam(c *fiber.Ctx, name string) string {
	id, err := url.PathUnescape(c.Params(name))
	if err != nil || !utf8.ValidString(id) || strings.ContainsRune(id, 0) {
		return ""
	}
	return strings.TrimSpace(id)
}

// missingID answers requests that reach the collection root without an identifier.
func (h *resourceHandler[T]) missingID(c *fiber.Ctx) error {
	return writeMessage(c, fiber.StatusBadRequest, h.msg.MissingID)
}

func (h *resourceHandler[T]) get(c *fiber.Ctx) error {
	id := idParam(c, "id")
	if id == "" {
		return h.missingID(c)
	}

	rec, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if h.single {
		return c.JSON(rec)
	}
	return c.JSON([]T{*rec})
}

func (h *resourceHandler[T]) create(c *fiber.Ctx) error {
	id := idParam(c, "id")
	if id == "" {
		return h.missingID(c)
	}

	in := h.newCreate()
	if emptyBody(c.Body()) && !h.emptyCreate {
		return h.badBody(c, validation.Struct(in))
	}
	if problems := decodeBody(c, in); problems != nil {
		return h.badBody(c, problems)
	}

	if _, err := h.svc.Create(c.UserContext(), id, in.record(id)); err != nil {
		return h.fail(c, err)
	}
	return writeMessage(c, fiber.StatusOK, h.msg.Created)
}

func (h *resourceHandler[T]) update(c *fiber.Ctx) error {
	id := idParam(c, "id")
	if id == "" {
		return h.missingID(c)
	}

	in := h.newUpdate()
	if emptyBody(c.Body()) && !h.emptyUpdate {
		return writeMessage(c, fiber.StatusBadRequest, msgInvalidInput)
	}
	if problems := decodeBody(c, in); problems != nil {
		return h.badBody(c, problems)
	}

	if _, err := h.svc.Update(c.UserContext(), id, in.apply); err != nil {
		return h.fail(c, err)
	}
	return writeMessage(c, fiber.StatusOK, h.msg.Updated)
}

func (h *resourceHandler[T]) remove(c *fiber.Ctx) error {
	id := idParam(c, "id")
	if id == "" {
		return h.missingID(c)
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return writeMessage(c, fiber.StatusOK, h.msg.Deleted)
}

// pageQuery serves /xPage?page=&limit= where both parameters are mandatory.
func (h *resourceHandler[T]) pageQuery(c *fiber.Ctx) error {
	page, limit := c.Query("page"), c.Query("limit")
	if page == "" || limit == "" {
		return writeMessage(c, fiber.StatusBadRequest, h.msg.PageRequired)
	}
	return h.page(c, page, limit)
}

// pagePath serves /xPage/:page with an optional limit query parameter.
func (h *resourceHandler[T]) pagePath(c *fiber.Ctx) error {
	return h.page(c, c.Params("page"), c.Query("limit"))
}

func (h *resourceHandler[T]) page(c *fiber.Ctx, page, limit string) error {
	p, err := pagination.Parse(page, limit, h.rules)
	if err != nil {
		var perr *pagination.Error
		if errors.As(err, &perr) {
			return writeMessage(c, fiber.StatusBadRequest, perr.Message)
		}
		return writeMessage(c, fiber.StatusBadRequest, msgInvalidParams)
	}

	res, err := h.svc.Page(c.UserContext(), p)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(res)
}

func (h *resourceHandler[T]) filter(c *fiber.Ctx) error {
	text := idParam(c, "text")
	if text == "" {
		return writeMessage(c, fiber.StatusBadRequest, msgInvalidSearch)
	}

	rows, err := h.svc.Filter(c.UserContext(), text)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(rows)
}

// fixed returns a handler that always answers 400 with message.
func fixed(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeMessage(c, fiber.StatusBadRequest, message)
	}
}

func (h *resourceHandler[T]) badBody(c *fiber.Ctx, problems []string) error {
	if h.bodyErrors && len(problems) > 0 {
		return writeMessage(c, fiber.StatusBadRequest, validation.Join(problems))
	}
	return writeMessage(c, fiber.StatusBadRequest, msgInvalidInput)
}

// fail maps service errors to the resource's responses.
func (h *resourceHandler[T]) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrIDRequired):
		return h.missingID(c)
	case errors.Is(err, service.ErrNotFound):
		return writeMessage(c, fiber.StatusNotFound, h.msg.NotFound)
	case errors.Is(err, service.ErrAlreadyExists):
		return writeMessage(c, fiber.StatusNotFound, h.msg.Exists)
	case errors.Is(err, service.ErrEmailTaken):
		return writeMessage(c, fiber.StatusConflict, msgEmailTaken)
	default:
		return internalError(c, h.log, err)
	}
}

// emptyBody reports whether body is absent, blank or an empty JSON object.
func emptyBody(body []byte) bool {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return true
	}
	if len(body) < 2 || body[0] != '{' || body[len(body)-1] != '}' {
		return false
	}
	return len(bytes.TrimSpace(body[1:len(body)-1])) == 0
}

// decodeBody unmarshals a JSON body into in and validates it. A blank body
// leaves in untouched. The problems slice is nil when in is valid.
func decodeBody(c *fiber.Ctx, in any) []string {
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, in); err != nil {
			return []string{msgInvalidInput}
		}
	}
	return validation.Struct(in)
}
