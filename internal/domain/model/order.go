package model

import (
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus converts a raw string into an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(raw), true
	}
	return "", false
}

// Valid reports whether the status is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := ParseOrderStatus(string(s))
	return ok
}

// Terminal reports whether the status is absorbing.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// orderTransitions encodes the forward-only order machine. Cancellation is
// reachable only from pending and confirmed.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusInTransit, OrderStatusCancelled},
	OrderStatusInTransit: {OrderStatusDelivered},
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Order is a buyer's claim against a crop's inventory. TotalPrice is frozen
// at creation time.
type Order struct {
	ID               int64
	CropID           int64
	BuyerID          int64
	FarmerID         int64
	TransporterID    *int64
	Quantity         decimal.Decimal
	Unit             string
	TotalPrice       decimal.Decimal
	Currency         string
	Status           OrderStatus
	PickupLocation   string
	DeliveryLocation *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InvolvesActor reports whether the actor participates in the order.
func (o *Order) InvolvesActor(actor Actor) bool {
	switch actor.Role {
	case RoleFarmer:
		return actor.ID == o.FarmerID
	case RoleBuyer:
		return actor.ID == o.BuyerID
	case RoleTransporter:
		return o.TransporterID != nil && actor.ID == *o.TransporterID
	}
	return false
}

// AuthorizeOrderTransition validates the requested status change against the
// order machine and the per-role authorization table. Unreachable targets
// fail with ErrInvalidTransition; reachable targets requested by the wrong
// actor fail with ErrUnauthorized.
func AuthorizeOrderTransition(actor Actor, order *Order, target OrderStatus) error {
	if !target.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	if !order.Status.CanTransitionTo(target) {
		return domainErrors.ErrInvalidTransition
	}

	var allowed bool
	switch actor.Role {
	case RoleFarmer:
		allowed = actor.ID == order.FarmerID && target == OrderStatusConfirmed
	case RoleBuyer:
		allowed = actor.ID == order.BuyerID && target == OrderStatusCancelled
	case RoleTransporter:
		allowed = order.TransporterID != nil && actor.ID == *order.TransporterID &&
			(target == OrderStatusInTransit || target == OrderStatusDelivered)
	}
	if !allowed {
		return domainErrors.ErrUnauthorized
	}
	return nil
}

// OrderStatistics aggregates an actor's order history. TotalValue sums
// total_price over delivered orders: sales for a farmer, spend for a buyer.
type OrderStatistics struct {
	Total      int
	ByStatus   map[OrderStatus]int
	TotalValue decimal.Decimal
}
