package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agronhq/agron/internal/domain/model"
)

// PlaceOrderRequest describes the payload for placing an order.
type PlaceOrderRequest struct {
	CropID           int64           `json:"crop_id" binding:"required"`
	Quantity         decimal.Decimal `json:"quantity"`
	PickupLocation   string          `json:"pickup_location"`
	DeliveryLocation *string         `json:"delivery_location"`
}

// OrderStatusRequest carries a requested order status transition.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID               int64           `json:"id"`
	CropID           int64           `json:"crop_id"`
	BuyerID          int64           `json:"buyer_id"`
	FarmerID         int64           `json:"farmer_id"`
	TransporterID    *int64          `json:"transporter_id,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	PickupLocation   string          `json:"pickup_location"`
	DeliveryLocation *string         `json:"delivery_location,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToOrderResponse maps an order onto its wire representation.
func ToOrderResponse(order model.Order) OrderResponse {
	return OrderResponse{
		ID:               order.ID,
		CropID:           order.CropID,
		BuyerID:          order.BuyerID,
		FarmerID:         order.FarmerID,
		TransporterID:    order.TransporterID,
		Quantity:         order.Quantity,
		Unit:             order.Unit,
		TotalPrice:       order.TotalPrice,
		Currency:         order.Currency,
		Status:           string(order.Status),
		PickupLocation:   order.PickupLocation,
		DeliveryLocation: order.DeliveryLocation,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

// OrderStatisticsResponse aggregates an actor's order history.
type OrderStatisticsResponse struct {
	Total      int             `json:"total"`
	ByStatus   map[string]int  `json:"by_status"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// ToOrderStatisticsResponse maps statistics onto the wire representation.
func ToOrderStatisticsResponse(stats model.OrderStatistics) OrderStatisticsResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return OrderStatisticsResponse{
		Total:      stats.Total,
		ByStatus:   byStatus,
		TotalValue: stats.TotalValue,
	}
}
