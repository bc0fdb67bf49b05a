package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"billingapi/internal/service"
	"billingapi/internal/validation"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /auth/register.
//
// @Summary  Register an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body registerRequest true "Account"
// @Success  200 {object} model.User
// @Failure  400 {object} messagePayload
// @Failure  401 {object} messagePayload
// @Router   /auth/register [post]
func Register(svc service.AuthService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in registerRequest
		if err := c.App().Config().JSONDecoder(c.Body(), &in); err != nil && !emptyBody(c.Body()) {
			return writeMessage(c, fiber.StatusBadRequest, msgInvalidInput)
		}
		if in.Email == "" || in.Password == "" || in.Role == "" {
			return writeMessage(c, fiber.StatusBadRequest, "Please provide valid name, password and role")
		}
		if problems := validation.Struct(&in); problems != nil {
			return writeMessage(c, fiber.StatusBadRequest, validation.Join(problems))
		}

		user, err := svc.Register(c.UserContext(), in.Email, in.Password, in.Role)
		if err != nil {
			if errors.Is(err, service.ErrAlreadyExists) {
				return writeMessage(c, fiber.StatusUnauthorized, "User already exists")
			}
			return internalError(c, log, err)
		}
		return c.JSON(user)
	}
}

// Login handles POST /auth/login.
//
// @Summary  Exchange credentials for a token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body loginRequest true "Credentials"
// @Success  200 {object} tokenResponse
// @Failure  400 {object} messagePayload
// @Failure  401 {object} messagePayload
// @Router   /auth/login [post]
func Login(svc service.AuthService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in loginRequest
		if err := c.App().Config().JSONDecoder(c.Body(), &in); err != nil && !emptyBody(c.Body()) {
			return writeMessage(c, fiber.StatusBadRequest, msgInvalidInput)
		}
		if in.Email == "" || in.Password == "" {
			return writeMessage(c, fiber.StatusBadRequest, "Please provide valid email and password")
		}

		token, err := svc.Login(c.UserContext(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeMessage(c, fiber.StatusUnauthorized, "Invalid credentials")
			}
			return internalError(c, log, err)
		}
		return c.JSON(tokenResponse{Token: token})
	}
}
