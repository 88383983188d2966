package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-loyalty-admin/internal/service"
)

type RateHandler struct {
	rateService service.RateService
}

func NewRateHandler(rateService service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// GetRate returns the committed store-level contribution rate.
// GET /dashboard/merchant/contribution-rate
func (h *RateHandler) GetRate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"rate": h.rateService.Rate()})
}

// SaveRate commits a new rate. Out-of-range input is rejected with an
// inline error and the previous rate stays committed.
// PUT /dashboard/merchant/contribution-rate
func (h *RateHandler) SaveRate(c *fiber.Ctx) error {
	var req struct {
		Rate float64 `json:"rate"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	rate, err := h.rateService.Save(c.Context(), req.Rate)
	if err != nil {
		if errors.Is(err, service.ErrRateOutOfRange) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error(), "rate": rate})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save rate"})
	}

	return c.JSON(fiber.Map{"message": "Contribution rate saved", "rate": rate})
}
