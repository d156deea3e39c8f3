package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/shipping"
)

// ShipmentHandler shipment endpoints.
type ShipmentHandler struct {
	uc *shipping.UseCase
}

func NewShipmentHandler(uc *shipping.UseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	shipment, err := h.uc.Create(c.Context(), in, GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shipment)
}

func (h *ShipmentHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.ShipmentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "shipment status updated"})
}

func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	shipments, err := h.uc.List(c.Context(), c.QueryInt("limit", defaultListLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shipments)
}
