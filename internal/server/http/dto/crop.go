package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agronhq/agron/internal/domain/model"
)

func init() {
	// Money and quantities are serialized as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the wire format for availability dates.
const DateLayout = "2006-01-02"

// CropRequest carries the mutable attributes of a crop listing.
type CropRequest struct {
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	Location         string          `json:"location"`
	AvailabilityDate string          `json:"availability_date"`
	Description      string          `json:"description"`
}

// CropStatusRequest carries a listing status override.
type CropStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CropResponse is the wire representation of a crop listing.
type CropResponse struct {
	ID               int64           `json:"id"`
	FarmerID         int64           `json:"farmer_id"`
	Name             string          `json:"name"`
	Type             string          `json:"type,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	Location         string          `json:"location,omitempty"`
	AvailabilityDate string          `json:"availability_date,omitempty"`
	Description      string          `json:"description,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToCropResponse maps a crop listing onto its wire representation.
func ToCropResponse(crop model.Crop) CropResponse {
	resp := CropResponse{
		ID:          crop.ID,
		FarmerID:    crop.FarmerID,
		Name:        crop.Name,
		Type:        crop.Type,
		Quantity:    crop.Quantity,
		Unit:        crop.Unit,
		Price:       crop.Price,
		Currency:    crop.Currency,
		Location:    crop.Location,
		Description: crop.Description,
		Status:      string(crop.Status),
		CreatedAt:   crop.CreatedAt,
		UpdatedAt:   crop.UpdatedAt,
	}
	if !crop.AvailabilityDate.IsZero() {
		resp.AvailabilityDate = crop.AvailabilityDate.Format(DateLayout)
	}
	return resp
}
