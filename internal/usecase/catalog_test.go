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

func validCropInput() CropInput {
	return CropInput{
		Name:     "Maize",
		Type:     "grain",
		Quantity: decimal.NewFromInt(100),
		Unit:     "kg",
		Price:    decimal.NewFromInt(5000),
		Location: "Kaduna",
	}
}

func TestCatalogUseCaseCreateRoleGate(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.CropRepositoryStub{CreateFn: func(context.Context, *model.Crop) (*model.Crop, error) {
		t.Fatal("create should not be called for non-farmers")
		return nil, nil
	}})

	if _, err := uc.Create(context.Background(), model.Actor{ID: 1, Role: model.RoleBuyer}, validCropInput()); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := uc.Create(context.Background(), model.Actor{ID: 1, Role: "ghost"}, validCropInput()); !errors.Is(err, domainErrors.ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
}

func TestCatalogUseCaseCreateValidation(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.CropRepositoryStub{})
	farmer := model.Actor{ID: 1, Role: model.RoleFarmer}

	in := validCropInput()
	in.Name = "  "
	if _, err := uc.Create(context.Background(), farmer, in); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty name, got %v", err)
	}

	in = validCropInput()
	in.Quantity = decimal.NewFromInt(-1)
	if _, err := uc.Create(context.Background(), farmer, in); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}

	in = validCropInput()
	in.Price = decimal.Zero
	if _, err := uc.Create(context.Background(), farmer, in); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero price, got %v", err)
	}
}

func TestCatalogUseCaseCreateDefaults(t *testing.T) {
	var created *model.Crop
	uc := NewCatalogUseCase(&testhelpers.CropRepositoryStub{CreateFn: func(_ context.Context, crop *model.Crop) (*model.Crop, error) {
		created = crop
		return crop, nil
	}})

	if _, err := uc.Create(context.Background(), model.Actor{ID: 3, Role: model.RoleFarmer}, validCropInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Currency != model.DefaultCurrency {
		t.Fatalf("expected default currency, got %s", created.Currency)
	}
	if created.Status != model.CropStatusAvailable {
		t.Fatalf("expected available status, got %s", created.Status)
	}
	if created.FarmerID != 3 {
		t.Fatalf("expected owner from actor, got %d", created.FarmerID)
	}
}

func TestCatalogUseCaseListStatusFilter(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.CropRepositoryStub{ListFn: func(_ context.Context, f repository.CropFilter) ([]model.Crop, error) {
		if f.Status != model.CropStatusReserved {
			t.Fatalf("unexpected filter status: %s", f.Status)
		}
		return []model.Crop{{ID: 1}}, nil
	}})

	crops, err := uc.List(context.Background(), repository.CropFilter{Status: model.CropStatusReserved})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(crops) != 1 {
		t.Fatalf("unexpected crops: %v", crops)
	}

	if _, err := uc.List(context.Background(), repository.CropFilter{Status: "stale"}); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestCatalogUseCaseLookups(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.CropRepositoryStub{
		TypesFn: func(context.Context) ([]string, error) {
			return []string{"grain", "vegetable"}, nil
		},
		RegionsFn: func(context.Context) ([]string, error) {
			return []string{"Kaduna"}, nil
		},
	})

	types, err := uc.Types(context.Background())
	if err != nil || len(types) != 2 {
		t.Fatalf("unexpected types: %v %v", types, err)
	}
	regions, err := uc.Regions(context.Background())
	if err != nil || len(regions) != 1 {
		t.Fatalf("unexpected regions: %v %v", regions, err)
	}
}

func TestCatalogUseCaseUpdateStatus(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.CropRepositoryStub{UpdateStatusFn: func(_ context.Context, cropID, farmerID int64, status model.CropStatus) (*model.Crop, error) {
		if cropID != 5 || farmerID != 2 || status != model.CropStatusSold {
			t.Fatalf("unexpected arguments: %d %d %s", cropID, farmerID, status)
		}
		return &model.Crop{ID: cropID, Status: status}, nil
	}})

	crop, err := uc.UpdateStatus(context.Background(), model.Actor{ID: 2, Role: model.RoleFarmer}, 5, "sold")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crop.Status != model.CropStatusSold {
		t.Fatalf("unexpected status: %s", crop.Status)
	}

	if _, err := uc.UpdateStatus(context.Background(), model.Actor{ID: 2, Role: model.RoleFarmer}, 5, "gone"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestCatalogUseCaseDeletePropagatesError(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.CropRepositoryStub{DeleteFn: func(context.Context, int64, int64) error {
		return domainErrors.ErrActiveOrders
	}})

	if err := uc.Delete(context.Background(), model.Actor{ID: 1, Role: model.RoleFarmer}, 9); !errors.Is(err, domainErrors.ErrActiveOrders) {
		t.Fatalf("expected active orders error, got %v", err)
	}
	if err := uc.Delete(context.Background(), model.Actor{ID: 1, Role: model.RoleTransporter}, 9); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
