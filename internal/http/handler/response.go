package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"billingapi/internal/http/middleware"
)

const (
	msgInvalidInput   = "Invalid request or bad input"
	msgInvalidParams  = "Invalid request or bad parameters"
	msgInvalidSearch  = "Invalid search text"
	msgInternalError  = "Internal server error"
	msgEmailTaken     = "Email already exists"
	msgRouteNotFound  = "Route not found"
	msgMethodNotAllow = "Method not allowed"
)

// messagePayload is the body of every non-2xx response and of write confirmations.
type messagePayload struct {
	Message string `json:"message"`
}

// writeMessage writes {"message": message} with the given status.
func writeMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(messagePayload{Message: message})
}

// internalError logs err and answers 500 without leaking it.
func internalError(c *fiber.Ctx, log *zap.Logger, err error) error {
	log.Error("request_failed",
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeMessage(c, fiber.StatusInternalServerError, msgInternalError)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			return writeMessage(c, fiber.StatusBadRequest, msgInvalidInput)
		case fiber.StatusNotFound:
			return writeMessage(c, status, msgRouteNotFound)
		case fiber.StatusMethodNotAllowed:
			return writeMessage(c, status, msgMethodNotAllow)
		case fiber.StatusRequestEntityTooLarge:
			return writeMessage(c, status, "Request body too large")
		default:
			return writeMessage(c, fiber.StatusInternalServerError, msgInternalError)
		}
	}
}
