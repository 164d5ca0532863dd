package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
)

// CropInput carries the mutable attributes of a crop listing.
type CropInput struct {
	Name             string
	Type             string
	Quantity         decimal.Decimal
	Unit             string
	Price            decimal.Decimal
	Currency         string
	Location         string
	AvailabilityDate time.Time
	Description      string
}

func (in *CropInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Unit) == "" {
		return domainErrors.ErrInvalidInput
	}
	if in.Quantity.IsNegative() {
		return domainErrors.ErrInvalidQuantity
	}
	if !in.Price.IsPositive() {
		return domainErrors.ErrInvalidInput
	}
	return nil
}

// CatalogUseCase manages the crop listing catalog.
type CatalogUseCase struct {
	crops repository.CropRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(crops repository.CropRepository) *CatalogUseCase {
	return &CatalogUseCase{crops: crops}
}

// Create publishes a new listing for the acting farmer.
func (u *CatalogUseCase) Create(ctx context.Context, actor model.Actor, input CropInput) (*model.Crop, error) {
	if err := requireRole(actor, model.RoleFarmer); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}

	return u.crops.Create(ctx, &model.Crop{
		FarmerID:         actor.ID,
		Name:             input.Name,
		Type:             input.Type,
		Quantity:         input.Quantity,
		Unit:             input.Unit,
		Price:            input.Price,
		Currency:         currency,
		Location:         input.Location,
		AvailabilityDate: input.AvailabilityDate,
		Description:      input.Description,
		Status:           model.CropStatusAvailable,
	})
}

// Get fetches a single listing.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Crop, error) {
	return u.crops.GetByID(ctx, id)
}

// List returns listings matching the filter.
func (u *CatalogUseCase) List(ctx context.Context, filter repository.CropFilter) ([]model.Crop, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.crops.List(ctx, filter)
}

// Types returns the distinct crop types present in the catalog.
func (u *CatalogUseCase) Types(ctx context.Context) ([]string, error) {
	return u.crops.Types(ctx)
}

// Regions returns the distinct locations present in the catalog.
func (u *CatalogUseCase) Regions(ctx context.Context) ([]string, error) {
	return u.crops.Regions(ctx)
}

// Update replaces the mutable attributes of the actor's own listing.
func (u *CatalogUseCase) Update(ctx context.Context, actor model.Actor, cropID int64, input CropInput) (*model.Crop, error) {
	if err := requireRole(actor, model.RoleFarmer); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}

	return u.crops.Update(ctx, actor.ID, &model.Crop{
		ID:               cropID,
		Name:             input.Name,
		Type:             input.Type,
		Quantity:         input.Quantity,
		Unit:             input.Unit,
		Price:            input.Price,
		Currency:         currency,
		Location:         input.Location,
		AvailabilityDate: input.AvailabilityDate,
		Description:      input.Description,
	})
}

// UpdateStatus overrides the listing status for the owning farmer.
func (u *CatalogUseCase) UpdateStatus(ctx context.Context, actor model.Actor, cropID int64, rawStatus string) (*model.Crop, error) {
	if err := requireRole(actor, model.RoleFarmer); err != nil {
		return nil, err
	}
	status, ok := model.ParseCropStatus(rawStatus)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.crops.UpdateStatus(ctx, cropID, actor.ID, status)
}

// Delete removes the actor's own listing unless active orders reference it.
func (u *CatalogUseCase) Delete(ctx context.Context, actor model.Actor, cropID int64) error {
	if err := requireRole(actor, model.RoleFarmer); err != nil {
		return err
	}
	return u.crops.Delete(ctx, cropID, actor.ID)
}
