package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-loyalty-admin/internal/service"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Lookup searches customers by name, email or id. A failed lookup is
// surfaced as a retryable error instead of an empty result.
// GET /dashboard/merchant/customer?search=
func (h *CustomerHandler) Lookup(c *fiber.Ctx) error {
	term := c.Query("search", "")

	customers, err := h.customerService.Search(c.Context(), term)
	if err != nil {
		if errors.Is(err, service.ErrLookupUnavailable) {
			return c.Status(503).JSON(fiber.Map{"error": err.Error(), "retryable": true})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to search customers"})
	}

	return c.JSON(fiber.Map{"data": customers, "count": len(customers), "search": term})
}
