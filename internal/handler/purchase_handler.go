package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/internal/service"
)

type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// GetPurchases returns the approval queue with the per-id loading marker.
// GET /dashboard/merchant/purchases
func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.purchaseService.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch purchases"})
	}

	deciding := []string{}
	for _, p := range purchases {
		if h.purchaseService.Deciding(p.ID) {
			deciding = append(deciding, p.ID)
		}
	}

	return c.JSON(fiber.Map{"data": purchases, "deciding": deciding})
}

// Approve decides a pending purchase as approved.
// POST /dashboard/merchant/purchases/:id/approve
func (h *PurchaseHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, model.PurchaseApproved)
}

// Reject decides a pending purchase as rejected.
// POST /dashboard/merchant/purchases/:id/reject
func (h *PurchaseHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, model.PurchaseRejected)
}

func (h *PurchaseHandler) decide(c *fiber.Ctx, decision model.PurchaseStatus) error {
	purchase, err := h.purchaseService.Decide(c.Context(), c.Params("id"), decision)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Purchase " + string(decision), "data": purchase})
	case errors.Is(err, repository.ErrPurchaseNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrDecisionInFlight), errors.Is(err, service.ErrAlreadyDecided):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDecision):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to decide purchase"})
	}
}
