package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-loyalty-admin/internal/service"
)

type NotificationHandler struct {
	notifService service.NotificationService
}

func NewNotificationHandler(notifService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

// GetNotifications returns the merchant inbox.
// GET /dashboard/merchant/notifications
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	notifications, err := h.notifService.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}
	return c.JSON(fiber.Map{"data": notifications})
}

// MarkRead marks one notification read. Idempotent.
// POST /dashboard/merchant/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notifService.MarkRead(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark notification read"})
	}
	return c.JSON(fiber.Map{"message": "Notification marked read"})
}

// MarkAllRead marks every notification read. Idempotent.
// POST /dashboard/merchant/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.notifService.MarkAllRead(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark notifications read"})
	}
	return c.JSON(fiber.Map{"message": "All notifications marked read"})
}

// Dismiss removes a notification; dismissing an absent id is a no-op.
// DELETE /dashboard/merchant/notifications/:id
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.notifService.Dismiss(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to dismiss notification"})
	}
	return c.JSON(fiber.Map{"message": "Notification dismissed"})
}
