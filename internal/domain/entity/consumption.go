package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumption is an immutable material-depletion event tied to a production
// activity. ProductionRefID points at a production order for manual
// consumption, or at a manufacturing record for the auto-generated spool and
// gas postings.
//
// MaterialName is a snapshot captured at record time. Reporting must use the
// snapshot, not the live material name, so history stays correct when a
// material is renamed.
type Consumption struct {
	ID              string
	ProductionRefID string
	MaterialID      string
	MaterialName    string
	Quantity        decimal.Decimal
	CreatedBy       string
	CreatedAt       time.Time
}
