package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/service"
	"go-loyalty-admin/pkg/validator"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func fieldErrors(errs []*validator.ErrorResponse) []fieldError {
	out := make([]fieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, fieldError{Field: e.FailedField, Rule: e.Tag})
	}
	return out
}

// LoginForm describes the login fields for one role so clients can render
// and validate the form.
// GET /login/:role
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	role, err := model.ParseRole(c.Params("role"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Unknown login role"})
	}

	var fields []fiber.Map
	switch role {
	case model.RoleAdmin:
		fields = []fiber.Map{
			{"name": "email", "rules": "required, email format"},
			{"name": "password", "rules": "required, minimum 6 characters"},
		}
	case model.RoleMerchant:
		fields = []fiber.Map{
			{"name": "store_name", "rules": "required"},
			{"name": "password", "rules": "required, minimum 6 characters"},
		}
	default:
		fields = []fiber.Map{
			{"name": "identifier", "rules": "required, email or phone number"},
			{"name": "password", "rules": "required, minimum 6 characters"},
		}
	}

	return c.JSON(fiber.Map{"role": role, "fields": fields})
}

// Login authenticates one role's form. Field format errors are returned
// per field before any credential check runs.
// POST /login/:role
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	role, err := model.ParseRole(c.Params("role"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Unknown login role"})
	}

	var identifier, password string
	switch role {
	case model.RoleAdmin:
		var req model.AdminLoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
		if errs := validator.ValidateStruct(req); len(errs) > 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fieldErrors(errs)})
		}
		identifier, password = req.Email, req.Password

	case model.RoleMerchant:
		var req model.MerchantLoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
		if errs := validator.ValidateStruct(req); len(errs) > 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fieldErrors(errs)})
		}
		identifier, password = req.StoreName, req.Password

	default:
		var req model.MemberLoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
		if errs := validator.ValidateStruct(req); len(errs) > 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fieldErrors(errs)})
		}
		identifier, password = req.Identifier, req.Password
	}

	response, err := h.authService.Login(c.Context(), role, identifier, password)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(response)
}

// Logout deletes the durable session; the token is dead afterwards even if
// it has not expired.
// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID, _ := c.Locals("session_id").(string)
	if err := h.authService.Logout(c.Context(), sessionID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to end session"})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Session restores the full persisted profile, the reload path.
// GET /session
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sessionID, _ := c.Locals("session_id").(string)
	session, err := h.authService.Restore(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to restore session"})
	}
	return c.JSON(session)
}
