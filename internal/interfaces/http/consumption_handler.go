package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/production"
)

// ConsumptionHandler manual material consumption endpoints.
type ConsumptionHandler struct {
	uc *production.ConsumptionUseCase
}

func NewConsumptionHandler(uc *production.ConsumptionUseCase) *ConsumptionHandler {
	return &ConsumptionHandler{uc: uc}
}

func (h *ConsumptionHandler) Record(c *fiber.Ctx) error {
	var in dto.CreateConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	consumption, err := h.uc.Record(c.Context(), in, GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(consumption)
}

func (h *ConsumptionHandler) List(c *fiber.Ctx) error {
	consumptions, err := h.uc.List(c.Context(), c.QueryInt("limit", defaultListLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(consumptions)
}
