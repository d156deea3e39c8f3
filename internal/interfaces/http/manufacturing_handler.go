package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/production"
)

// ManufacturingHandler production run endpoints.
type ManufacturingHandler struct {
	uc *production.ManufacturingUseCase
}

func NewManufacturingHandler(uc *production.ManufacturingUseCase) *ManufacturingHandler {
	return &ManufacturingHandler{uc: uc}
}

func (h *ManufacturingHandler) Create(c *fiber.Ctx) error {
	var in dto.ManufacturingInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	record, err := h.uc.Create(c.Context(), in, GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *ManufacturingHandler) Update(c *fiber.Ctx) error {
	var in dto.ManufacturingInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	record, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

func (h *ManufacturingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "manufacturing record deleted"})
}

func (h *ManufacturingHandler) List(c *fiber.Ctx) error {
	records, err := h.uc.List(c.Context(), c.QueryInt("limit", defaultListLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}
