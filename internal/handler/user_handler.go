package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers lists users, intersecting the search term with the role and
// status filters. "all" (or absent) means no constraint.
// GET /dashboard/admin/users?search=&role=&status=
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	filter := model.UserFilter{
		Search: c.Query("search", ""),
		Role:   c.Query("role", "all"),
		Status: c.Query("status", "all"),
	}

	users, err := h.userService.Find(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	return c.JSON(fiber.Map{"data": users, "count": len(users)})
}

// UpdateStatus sets one user's lifecycle status.
// PATCH /dashboard/admin/users/:id/status
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Status model.UserStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.userService.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Status updated", "data": user})
	case errors.Is(err, service.ErrInvalidUserStatus):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrUserBusy):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update status"})
	}
}

// DeleteUser removes a user record. There is no undo.
// DELETE /dashboard/admin/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	err := h.userService.Delete(c.Context(), c.Params("id"))
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "User deleted"})
	case errors.Is(err, repository.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrUserBusy):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}
}
