// Package manufacturing holds the pure derivations for production runs
// (domain services, no dependencies beyond decimal).
package manufacturing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SquareMeters computes the produced area of a run:
// (width_cm / 100) * length_m * quantity.
func SquareMeters(widthCM, lengthM decimal.Decimal, quantity int) decimal.Decimal {
	return widthCM.Div(hundred).Mul(lengthM).Mul(decimal.NewFromInt(int64(quantity)))
}

// ModelLabel builds the display label for a run's dimensions, e.g.
// "0.5 mm x 100 cm x 2 m". Width and length are integer-truncated for
// display; thickness is rendered as given.
func ModelLabel(thicknessMM, widthCM, lengthM decimal.Decimal) string {
	return fmt.Sprintf("%s mm x %d cm x %d m", thicknessMM.String(), widthCM.IntPart(), lengthM.IntPart())
}
