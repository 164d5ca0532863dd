package repository

import (
	"context"

	"github.com/agronhq/agron/internal/domain/model"
)

// CropFilter narrows crop listings. Zero values match everything.
type CropFilter struct {
	Type     string
	Region   string
	Status   model.CropStatus
	FarmerID int64
}

// CropRepository describes persistence operations for crop listings.
// Owner-gated mutations take the acting farmer's id and verify ownership
// inside the same transaction that applies the change.
type CropRepository interface {
	Create(ctx context.Context, crop *model.Crop) (*model.Crop, error)
	GetByID(ctx context.Context, id int64) (*model.Crop, error)
	List(ctx context.Context, filter CropFilter) ([]model.Crop, error)
	Update(ctx context.Context, farmerID int64, crop *model.Crop) (*model.Crop, error)
	UpdateStatus(ctx context.Context, cropID, farmerID int64, status model.CropStatus) (*model.Crop, error)
	Delete(ctx context.Context, cropID, farmerID int64) error
	Types(ctx context.Context) ([]string, error)
	Regions(ctx context.Context) ([]string, error)
}
