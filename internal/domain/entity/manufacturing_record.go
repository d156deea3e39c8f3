package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Machines on the line.
const (
	Machine1 = "Makine 1"
	Machine2 = "Makine 2"
)

// ValidMachine reports whether s is a known machine label.
func ValidMachine(s string) bool {
	return s == Machine1 || s == Machine2
}

// Spool ("masura") types. Each non-sentinel label doubles as the name of the
// raw material that holds the spool stock; MasuraNone means the run used no
// spool at all.
const (
	Masura100  = "Masura 100"
	Masura120  = "Masura 120"
	Masura150  = "Masura 150"
	Masura200  = "Masura 200"
	MasuraNone = "Masura Yok"
)

// ValidMasuraType reports whether s is a known spool type.
func ValidMasuraType(s string) bool {
	switch s {
	case Masura100, Masura120, Masura150, Masura200, MasuraNone:
		return true
	}
	return false
}

// ManufacturingRecord is one production run of sheet/film. SquareMeters and
// Model are derived at write time. Unlike the event entities, records are
// mutable: update and delete do not reverse the auto-consumption posted at
// creation.
type ManufacturingRecord struct {
	ID               string
	ProductionDate   time.Time
	Machine          string
	ThicknessMM      decimal.Decimal
	WidthCM          decimal.Decimal
	LengthM          decimal.Decimal
	Quantity         int
	SquareMeters     decimal.Decimal // (width_cm/100) * length_m * quantity
	MasuraType       string
	MasuraQuantity   int
	ColorMaterialID  string // optional raw-material reference
	ColorName        string // snapshot of the color material's name
	Model            string // display label, e.g. "0.5 mm x 100 cm x 2 m"
	GasConsumptionKG decimal.Decimal
	CreatedBy        string
	CreatedAt        time.Time
}
