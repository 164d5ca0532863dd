package usecase_test

import (
	"context"
	"errors"
	. "github.com/agronhq/agron/internal/usecase"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
	testhelpers "github.com/agronhq/agron/internal/test"
)

func TestOrderUseCasePlaceValidation(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{PlaceFn: func(context.Context, repository.PlaceOrderParams) (*model.Order, error) {
		t.Fatal("place should not be called on validation errors")
		return nil, nil
	}})

	input := PlaceOrderInput{CropID: 1, Quantity: decimal.NewFromInt(10)}
	if _, err := uc.Place(context.Background(), model.Actor{ID: 1, Role: model.RoleFarmer}, input); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	input.Quantity = decimal.Zero
	if _, err := uc.Place(context.Background(), model.Actor{ID: 1, Role: model.RoleBuyer}, input); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}

	input.Quantity = decimal.NewFromInt(-3)
	if _, err := uc.Place(context.Background(), model.Actor{ID: 1, Role: model.RoleBuyer}, input); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
}

func TestOrderUseCasePlaceSuccess(t *testing.T) {
	delivery := "Lagos"
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{PlaceFn: func(_ context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
		if params.CropID != 4 || params.BuyerID != 11 {
			t.Fatalf("unexpected identifiers: %d %d", params.CropID, params.BuyerID)
		}
		if !params.Quantity.Equal(decimal.NewFromInt(30)) {
			t.Fatalf("unexpected quantity: %s", params.Quantity)
		}
		if params.DeliveryLocation == nil || *params.DeliveryLocation != delivery {
			t.Fatalf("delivery location not forwarded")
		}
		return &model.Order{ID: 1, Status: model.OrderStatusPending}, nil
	}})

	order, err := uc.Place(context.Background(), model.Actor{ID: 11, Role: model.RoleBuyer}, PlaceOrderInput{
		CropID:           4,
		Quantity:         decimal.NewFromInt(30),
		PickupLocation:   "Kaduna",
		DeliveryLocation: &delivery,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected status: %s", order.Status)
	}
}

func TestOrderUseCaseCancelRoleGate(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{CancelFn: func(_ context.Context, orderID, buyerID int64) (*model.Order, error) {
		if orderID != 8 || buyerID != 2 {
			t.Fatalf("unexpected arguments: %d %d", orderID, buyerID)
		}
		return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
	}})

	if _, err := uc.Cancel(context.Background(), model.Actor{ID: 2, Role: model.RoleFarmer}, 8); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	order, err := uc.Cancel(context.Background(), model.Actor{ID: 2, Role: model.RoleBuyer}, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected status: %s", order.Status)
	}
}

func TestOrderUseCaseUpdateStatusParsing(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{UpdateStatusFn: func(_ context.Context, orderID int64, actor model.Actor, target model.OrderStatus) (*model.Order, error) {
		if target != model.OrderStatusConfirmed {
			t.Fatalf("unexpected target: %s", target)
		}
		return &model.Order{ID: orderID, Status: target}, nil
	}})
	farmer := model.Actor{ID: 1, Role: model.RoleFarmer}

	if _, err := uc.UpdateStatus(context.Background(), farmer, 3, "shipped"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}

	order, err := uc.UpdateStatus(context.Background(), farmer, 3, "confirmed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected status: %s", order.Status)
	}
}

func TestOrderUseCaseGetParticipantsOnly(t *testing.T) {
	transporterID := int64(33)
	stored := &model.Order{ID: 5, BuyerID: 10, FarmerID: 20, TransporterID: &transporterID}
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{GetByIDFn: func(context.Context, int64) (*model.Order, error) {
		return stored, nil
	}})

	for _, actor := range []model.Actor{
		{ID: 10, Role: model.RoleBuyer},
		{ID: 20, Role: model.RoleFarmer},
		{ID: 33, Role: model.RoleTransporter},
	} {
		if _, err := uc.Get(context.Background(), actor, 5); err != nil {
			t.Fatalf("participant %+v rejected: %v", actor, err)
		}
	}

	if _, err := uc.Get(context.Background(), model.Actor{ID: 99, Role: model.RoleBuyer}, 5); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestOrderUseCaseListStatusFilter(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{ListByActorFn: func(_ context.Context, _ model.Actor, status model.OrderStatus) ([]model.Order, error) {
		if status != model.OrderStatusDelivered {
			t.Fatalf("unexpected status filter: %q", status)
		}
		return []model.Order{{ID: 1}}, nil
	}})
	buyer := model.Actor{ID: 1, Role: model.RoleBuyer}

	if _, err := uc.List(context.Background(), buyer, "finished"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}

	orders, err := uc.List(context.Background(), buyer, "delivered")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("unexpected orders: %v", orders)
	}
}

func TestOrderUseCaseStatistics(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{StatisticsByActorFn: func(context.Context, model.Actor) (*model.OrderStatistics, error) {
		return &model.OrderStatistics{
			Total:      3,
			ByStatus:   map[model.OrderStatus]int{model.OrderStatusDelivered: 2, model.OrderStatusCancelled: 1},
			TotalValue: decimal.NewFromInt(150000),
		}, nil
	}})

	stats, err := uc.Statistics(context.Background(), model.Actor{ID: 1, Role: model.RoleFarmer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 || !stats.TotalValue.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("unexpected statistics: %+v", stats)
	}
}
