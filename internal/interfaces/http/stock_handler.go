package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/inventory"
)

const defaultListLimit = 100

// StockHandler manual stock movement endpoints.
type StockHandler struct {
	uc *inventory.StockUseCase
}

func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

func (h *StockHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateStockTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	transaction, err := h.uc.CreateTransaction(c.Context(), in, GetUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transaction)
}

func (h *StockHandler) ListTransactions(c *fiber.Ctx) error {
	transactions, err := h.uc.ListTransactions(c.Context(), c.QueryInt("limit", defaultListLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transactions)
}
