package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
)

// PlaceOrderInput carries a buyer's claim against a crop listing.
type PlaceOrderInput struct {
	CropID           int64
	Quantity         decimal.Decimal
	PickupLocation   string
	DeliveryLocation *string
}

// OrderUseCase encapsulates the order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place creates an order for the acting buyer, atomically reserving crop
// inventory. A delivery job is opened when a delivery location is given.
func (u *OrderUseCase) Place(ctx context.Context, actor model.Actor, input PlaceOrderInput) (*model.Order, error) {
	if err := requireRole(actor, model.RoleBuyer); err != nil {
		return nil, err
	}
	if !input.Quantity.IsPositive() {
		return nil, domainErrors.ErrInvalidQuantity
	}

	return u.orders.Place(ctx, repository.PlaceOrderParams{
		CropID:           input.CropID,
		BuyerID:          actor.ID,
		Quantity:         input.Quantity,
		PickupLocation:   input.PickupLocation,
		DeliveryLocation: input.DeliveryLocation,
	})
}

// Cancel withdraws the acting buyer's order and restores crop inventory.
func (u *OrderUseCase) Cancel(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error) {
	if err := requireRole(actor, model.RoleBuyer); err != nil {
		return nil, err
	}
	return u.orders.Cancel(ctx, orderID, actor.ID)
}

// UpdateStatus applies a role-gated status transition.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor model.Actor, orderID int64, rawStatus string) (*model.Order, error) {
	target, ok := model.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, actor, target)
}

// Get returns the order when the actor participates in it.
func (u *OrderUseCase) Get(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.InvolvesActor(actor) {
		return nil, domainErrors.ErrUnauthorized
	}
	return order, nil
}

// List returns the actor's orders, optionally narrowed by status.
func (u *OrderUseCase) List(ctx context.Context, actor model.Actor, rawStatus string) ([]model.Order, error) {
	var status model.OrderStatus
	if rawStatus != "" {
		parsed, ok := model.ParseOrderStatus(rawStatus)
		if !ok {
			return nil, domainErrors.ErrInvalidStatus
		}
		status = parsed
	}
	return u.orders.ListByActor(ctx, actor, status)
}

// Statistics aggregates the actor's order history.
func (u *OrderUseCase) Statistics(ctx context.Context, actor model.Actor) (*model.OrderStatistics, error) {
	return u.orders.StatisticsByActor(ctx, actor)
}
