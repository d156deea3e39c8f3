package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.OrderPlanned, entity.OrderInProgress, true},
		{entity.OrderPlanned, entity.OrderCompleted, true},
		{entity.OrderPlanned, entity.OrderCancelled, true},
		{entity.OrderInProgress, entity.OrderCompleted, true},
		{entity.OrderInProgress, entity.OrderCancelled, true},
		{entity.OrderInProgress, entity.OrderPlanned, false},
		{entity.OrderCompleted, entity.OrderInProgress, false},
		{entity.OrderCompleted, entity.OrderCancelled, false},
		{entity.OrderCancelled, entity.OrderPlanned, false},
		{entity.OrderCancelled, entity.OrderCompleted, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.CanTransitionOrder(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleUser))
	assert.True(t, entity.ValidRole(entity.RoleViewer))
	assert.False(t, entity.ValidRole("superadmin"))
	assert.False(t, entity.ValidRole(""))
}

func TestValidMasuraType(t *testing.T) {
	for _, m := range []string{entity.Masura100, entity.Masura120, entity.Masura150, entity.Masura200, entity.MasuraNone} {
		assert.True(t, entity.ValidMasuraType(m), m)
	}
	assert.False(t, entity.ValidMasuraType("Masura 300"))
}

func TestStockTransactionSignedQuantity(t *testing.T) {
	in := entity.StockTransaction{Type: entity.TransactionIn, Quantity: decimal.NewFromInt(5)}
	out := entity.StockTransaction{Type: entity.TransactionOut, Quantity: decimal.NewFromInt(5)}
	assert.True(t, in.SignedQuantity().Equal(decimal.NewFromInt(5)))
	assert.True(t, out.SignedQuantity().Equal(decimal.NewFromInt(-5)))
}

func TestRawMaterialLowStock(t *testing.T) {
	m := entity.RawMaterial{CurrentStock: decimal.NewFromInt(10), MinStockLevel: decimal.NewFromInt(10)}
	assert.True(t, m.LowStock(), "at the minimum counts as low")

	m.CurrentStock = decimal.NewFromInt(11)
	assert.False(t, m.LowStock())
}
