package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/agronhq/agron/internal/domain/model"
)

// PlaceOrderParams carries everything needed to place an order against a crop.
type PlaceOrderParams struct {
	CropID           int64
	BuyerID          int64
	Quantity         decimal.Decimal
	PickupLocation   string
	DeliveryLocation *string
}

// OrderRepository describes persistence operations for orders. Place, Cancel
// and UpdateStatus are transactional units: they re-read current state under
// row locks, validate preconditions, and apply all cross-entity effects
// atomically.
type OrderRepository interface {
	Place(ctx context.Context, params PlaceOrderParams) (*model.Order, error)
	Cancel(ctx context.Context, orderID, buyerID int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, actor model.Actor, target model.OrderStatus) (*model.Order, error)
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)
	ListByActor(ctx context.Context, actor model.Actor, status model.OrderStatus) ([]model.Order, error)
	StatisticsByActor(ctx context.Context, actor model.Actor) (*model.OrderStatistics, error)
}
