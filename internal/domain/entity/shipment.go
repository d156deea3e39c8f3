package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment statuses.
const (
	ShipmentPending   = "pending"
	ShipmentInTransit = "in_transit"
	ShipmentDelivered = "delivered"
)

// ValidShipmentStatus reports whether s is a known shipment status.
func ValidShipmentStatus(s string) bool {
	switch s {
	case ShipmentPending, ShipmentInTransit, ShipmentDelivered:
		return true
	}
	return false
}

// Shipment is an outgoing delivery of product. Stock is committed at
// creation, not at delivery; status changes after that are bookkeeping only.
type Shipment struct {
	ID              string
	ShipmentNumber  string // "SHP-00001", from a dedicated atomic sequence
	ProductID       string
	ProductName     string // snapshot at creation
	Quantity        decimal.Decimal
	CustomerCompany string
	Destination     string
	Status          string
	ShipmentDate    time.Time
	InvoiceNumber   string
	VehiclePlate    string
	DriverName      string
	CreatedBy       string
	CreatedAt       time.Time
}
