package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"billingapi/internal/model"
	"billingapi/internal/service"
)

type settingsHandler struct {
	*resourceHandler[model.Settings]
	svc service.SettingsService
}

func newSettingsHandler(svc service.SettingsService, log *zap.Logger) *settingsHandler {
	return &settingsHandler{
		resourceHandler: &resourceHandler[model.Settings]{
			svc: svc,
			log: log,
			msg: Messages{
				MissingID: msgInvalidInput,
				NotFound:  "Settings not found for company",
				Updated:   "Company settings updated successfully",
				Deleted:   "Company settings deleted successfully",
			},
			single:    true,
			newUpdate: func() updateInput[model.Settings] { return &settingsUpdate{} },
		},
		svc: svc,
	}
}

// list serves GET /settings/company. The trailing-slash form is rejected.
func (h *settingsHandler) list(c *fiber.Ctx) error {
	path := c.OriginalURL()
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if strings.HasSuffix(path, "/") {
		return writeMessage(c, fiber.StatusBadRequest, msgInvalidInput)
	}

	rows, err := h.svc.All(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(rows)
}

// upsert serves POST /settings/company; company_id comes from the body.
func (h *settingsHandler) upsert(c *fiber.Ctx) error {
	var in settingsCreate
	if emptyBody(c.Body()) {
		return writeMessage(c, fiber.StatusBadRequest, msgInvalidInput)
	}
	if problems := decodeBody(c, &in); problems != nil {
		return writeMessage(c, fiber.StatusBadRequest, msgInvalidInput)
	}

	if _, err := h.svc.Upsert(c.UserContext(), in.record("")); err != nil {
		return internalError(c, h.log, err)
	}
	return writeMessage(c, fiber.StatusOK, "Company settings created/updated successfully")
}
