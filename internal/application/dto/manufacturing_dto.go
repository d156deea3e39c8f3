package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManufacturingInput body for POST and PUT /api/manufacturing. Derived fields
// (square meters, model label, color name) are computed server-side.
type ManufacturingInput struct {
	ProductionDate   time.Time       `json:"production_date"`
	Machine          string          `json:"machine"`
	ThicknessMM      decimal.Decimal `json:"thickness_mm"`
	WidthCM          decimal.Decimal `json:"width_cm"`
	LengthM          decimal.Decimal `json:"length_m"`
	Quantity         int             `json:"quantity"`
	MasuraType       string          `json:"masura_type"`
	MasuraQuantity   int             `json:"masura_quantity"`
	ColorMaterialID  string          `json:"color_material_id,omitempty"`
	GasConsumptionKG decimal.Decimal `json:"gas_consumption_kg"`
}

// ManufacturingResponse public view of a production run record.
type ManufacturingResponse struct {
	ID               string          `json:"id"`
	ProductionDate   time.Time       `json:"production_date"`
	Machine          string          `json:"machine"`
	ThicknessMM      decimal.Decimal `json:"thickness_mm"`
	WidthCM          decimal.Decimal `json:"width_cm"`
	LengthM          decimal.Decimal `json:"length_m"`
	Quantity         int             `json:"quantity"`
	SquareMeters     decimal.Decimal `json:"square_meters"`
	MasuraType       string          `json:"masura_type"`
	MasuraQuantity   int             `json:"masura_quantity"`
	ColorMaterialID  string          `json:"color_material_id,omitempty"`
	ColorName        string          `json:"color_name,omitempty"`
	Model            string          `json:"model"`
	GasConsumptionKG decimal.Decimal `json:"gas_consumption_kg"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
}
