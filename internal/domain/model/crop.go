package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CropStatus describes listing availability.
type CropStatus string

const (
	CropStatusAvailable CropStatus = "available"
	CropStatusReserved  CropStatus = "reserved"
	CropStatusSold      CropStatus = "sold"
)

// DefaultCurrency is applied to listings created without an explicit currency.
const DefaultCurrency = "NGN"

// ParseCropStatus converts a raw string into a CropStatus.
func ParseCropStatus(raw string) (CropStatus, bool) {
	switch CropStatus(raw) {
	case CropStatusAvailable, CropStatusReserved, CropStatusSold:
		return CropStatus(raw), true
	}
	return "", false
}

// Valid reports whether the status is a known crop status.
func (s CropStatus) Valid() bool {
	_, ok := ParseCropStatus(string(s))
	return ok
}

// Crop is a farmer's listing of produce for sale.
type Crop struct {
	ID               int64
	FarmerID         int64
	Name             string
	Type             string
	Quantity         decimal.Decimal
	Unit             string
	Price            decimal.Decimal
	Currency         string
	Location         string
	AvailabilityDate time.Time
	Description      string
	Status           CropStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TotalPrice returns the price of the given quantity at the listed rate.
func (c *Crop) TotalPrice(quantity decimal.Decimal) decimal.Decimal {
	return c.Price.Mul(quantity)
}
