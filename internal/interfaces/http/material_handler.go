package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/inventory"
)

// MaterialHandler raw-material CRUD.
type MaterialHandler struct {
	uc *inventory.MaterialUseCase
}

func NewMaterialHandler(uc *inventory.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	material, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(material)
}

func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	material, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(material)
}

func (h *MaterialHandler) List(c *fiber.Ctx) error {
	materials, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(materials)
}
