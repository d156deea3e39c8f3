package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/production"
)

// ProductionOrderHandler production order endpoints.
type ProductionOrderHandler struct {
	uc *production.OrderUseCase
}

func NewProductionOrderHandler(uc *production.OrderUseCase) *ProductionOrderHandler {
	return &ProductionOrderHandler{uc: uc}
}

func (h *ProductionOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.uc.Create(c.Context(), in, GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *ProductionOrderHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.OrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *ProductionOrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.List(c.Context(), c.QueryInt("limit", defaultListLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}
