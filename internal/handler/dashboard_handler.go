package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/internal/service"
)

type DashboardHandler struct {
	dashService service.DashboardService
	rateService service.RateService
}

func NewDashboardHandler(dashService service.DashboardService, rateService service.RateService) *DashboardHandler {
	return &DashboardHandler{dashService: dashService, rateService: rateService}
}

// AdminOverview returns the admin landing aggregates.
// GET /dashboard/admin
func (h *DashboardHandler) AdminOverview(c *fiber.Ctx) error {
	overview, err := h.dashService.AdminOverview()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch overview"})
	}
	return c.JSON(overview)
}

// MerchantOverview returns the merchant landing aggregates.
// GET /dashboard/merchant
func (h *DashboardHandler) MerchantOverview(c *fiber.Ctx) error {
	overview, err := h.dashService.MerchantOverview(h.rateService.Rate())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch overview"})
	}
	return c.JSON(overview)
}

// MemberSummary returns the member points dashboard.
// GET /dashboard/member
func (h *DashboardHandler) MemberSummary(c *fiber.Ctx) error {
	summary, err := h.dashService.PointsSummary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch points summary"})
	}
	return c.JSON(summary)
}

// GetMembers lists the admin shadow member records.
// GET /dashboard/admin/members
func (h *DashboardHandler) GetMembers(c *fiber.Ctx) error {
	members, err := h.dashService.Members()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch members"})
	}
	return c.JSON(fiber.Map{"data": members})
}

// GetMerchants lists the admin shadow merchant records.
// GET /dashboard/admin/merchants
func (h *DashboardHandler) GetMerchants(c *fiber.Ctx) error {
	merchants, err := h.dashService.Merchants()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch merchants"})
	}
	return c.JSON(fiber.Map{"data": merchants})
}

// ToggleMemberStatus flips a member between active and inactive.
// PATCH /dashboard/admin/members/:id/status
func (h *DashboardHandler) ToggleMemberStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	member, err := h.dashService.ToggleMemberStatus(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Status updated", "data": member})
}

// ToggleMerchantStatus flips a merchant between active and inactive.
// PATCH /dashboard/admin/merchants/:id/status
func (h *DashboardHandler) ToggleMerchantStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid merchant ID"})
	}

	merchant, err := h.dashService.ToggleMerchantStatus(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Status updated", "data": merchant})
}

// DeleteMember removes a shadow member record.
// DELETE /dashboard/admin/members/:id
func (h *DashboardHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	if err := h.dashService.DeleteMember(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Member deleted"})
}

// DeleteMerchant removes a shadow merchant record.
// DELETE /dashboard/admin/merchants/:id
func (h *DashboardHandler) DeleteMerchant(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid merchant ID"})
	}

	if err := h.dashService.DeleteMerchant(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Merchant deleted"})
}

// SetMemberRate sets one member's contribution rate. Out-of-range input is
// rejected inline and the committed rate stays unchanged.
// POST /dashboard/admin/members/:id/contribution-rate
func (h *DashboardHandler) SetMemberRate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	var req struct {
		Rate float64 `json:"rate"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	member, err := h.dashService.SetMemberContributionRate(id, req.Rate)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Contribution rate updated", "data": member})
	case errors.Is(err, service.ErrRateOutOfRange):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrMemberNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update rate"})
	}
}
