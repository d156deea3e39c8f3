package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateShipmentRequest body for POST /api/shipments.
type CreateShipmentRequest struct {
	ProductID       string          `json:"product_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	CustomerCompany string          `json:"customer_company"`
	Destination     string          `json:"destination"`
	ShipmentDate    time.Time       `json:"shipment_date"`
	InvoiceNumber   string          `json:"invoice_number"`
	VehiclePlate    string          `json:"vehicle_plate"`
	DriverName      string          `json:"driver_name"`
}

// ShipmentStatusRequest body for PATCH /api/shipments/:id/status.
type ShipmentStatusRequest struct {
	Status string `json:"status"`
}

// ShipmentResponse public view of a shipment.
type ShipmentResponse struct {
	ID              string          `json:"id"`
	ShipmentNumber  string          `json:"shipment_number"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	CustomerCompany string          `json:"customer_company"`
	Destination     string          `json:"destination"`
	Status          string          `json:"status"`
	ShipmentDate    time.Time       `json:"shipment_date"`
	InvoiceNumber   string          `json:"invoice_number,omitempty"`
	VehiclePlate    string          `json:"vehicle_plate,omitempty"`
	DriverName      string          `json:"driver_name,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}
