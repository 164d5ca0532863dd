package test

import (
	"context"
	"time"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CropRepositoryStub allows tests to customize behaviour per method.
type CropRepositoryStub struct {
	CreateFn       func(context.Context, *model.Crop) (*model.Crop, error)
	GetByIDFn      func(context.Context, int64) (*model.Crop, error)
	ListFn         func(context.Context, repository.CropFilter) ([]model.Crop, error)
	UpdateFn       func(context.Context, int64, *model.Crop) (*model.Crop, error)
	UpdateStatusFn func(context.Context, int64, int64, model.CropStatus) (*model.Crop, error)
	DeleteFn       func(context.Context, int64, int64) error
	TypesFn        func(context.Context) ([]string, error)
	RegionsFn      func(context.Context) ([]string, error)
}

// Create delegates to provided function or echoes the crop with an id.
func (s *CropRepositoryStub) Create(ctx context.Context, crop *model.Crop) (*model.Crop, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, crop)
	}
	out := *crop
	out.ID = 1
	return &out, nil
}

// GetByID delegates to provided function or returns not found.
func (s *CropRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Crop, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to provided function or returns an empty slice.
func (s *CropRepositoryStub) List(ctx context.Context, filter repository.CropFilter) ([]model.Crop, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return nil, nil
}

// Update delegates to provided function or echoes the crop.
func (s *CropRepositoryStub) Update(ctx context.Context, farmerID int64, crop *model.Crop) (*model.Crop, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, farmerID, crop)
	}
	out := *crop
	out.FarmerID = farmerID
	return &out, nil
}

// UpdateStatus delegates to provided function or returns not found.
func (s *CropRepositoryStub) UpdateStatus(ctx context.Context, cropID, farmerID int64, status model.CropStatus) (*model.Crop, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, cropID, farmerID, status)
	}
	return nil, domainErrors.ErrNotFound
}

// Delete delegates to provided function or succeeds.
func (s *CropRepositoryStub) Delete(ctx context.Context, cropID, farmerID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, cropID, farmerID)
	}
	return nil
}

// Types delegates to provided function or returns an empty slice.
func (s *CropRepositoryStub) Types(ctx context.Context) ([]string, error) {
	if s.TypesFn != nil {
		return s.TypesFn(ctx)
	}
	return nil, nil
}

// Regions delegates to provided function or returns an empty slice.
func (s *CropRepositoryStub) Regions(ctx context.Context) ([]string, error) {
	if s.RegionsFn != nil {
		return s.RegionsFn(ctx)
	}
	return nil, nil
}

// OrderRepositoryStub allows tests to customize behaviour per method.
type OrderRepositoryStub struct {
	PlaceFn             func(context.Context, repository.PlaceOrderParams) (*model.Order, error)
	CancelFn            func(context.Context, int64, int64) (*model.Order, error)
	UpdateStatusFn      func(context.Context, int64, model.Actor, model.OrderStatus) (*model.Order, error)
	GetByIDFn           func(context.Context, int64) (*model.Order, error)
	ListByActorFn       func(context.Context, model.Actor, model.OrderStatus) ([]model.Order, error)
	StatisticsByActorFn func(context.Context, model.Actor) (*model.OrderStatistics, error)
}

// Place delegates to provided function or returns a pending order.
func (s *OrderRepositoryStub) Place(ctx context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, params)
	}
	return &model.Order{
		ID:       1,
		CropID:   params.CropID,
		BuyerID:  params.BuyerID,
		Quantity: params.Quantity,
		Status:   model.OrderStatusPending,
	}, nil
}

// Cancel delegates to provided function or returns not found.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID, buyerID int64) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, buyerID)
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus delegates to provided function or returns not found.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, actor model.Actor, target model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, actor, target)
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID delegates to provided function or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

// ListByActor delegates to provided function or returns an empty slice.
func (s *OrderRepositoryStub) ListByActor(ctx context.Context, actor model.Actor, status model.OrderStatus) ([]model.Order, error) {
	if s.ListByActorFn != nil {
		return s.ListByActorFn(ctx, actor, status)
	}
	return nil, nil
}

// StatisticsByActor delegates to provided function or returns zeroes.
func (s *OrderRepositoryStub) StatisticsByActor(ctx context.Context, actor model.Actor) (*model.OrderStatistics, error) {
	if s.StatisticsByActorFn != nil {
		return s.StatisticsByActorFn(ctx, actor)
	}
	return &model.OrderStatistics{ByStatus: map[model.OrderStatus]int{}}, nil
}

// DeliveryJobRepositoryStub allows tests to customize behaviour per method.
type DeliveryJobRepositoryStub struct {
	GetByIDFn           func(context.Context, int64) (*model.DeliveryJob, error)
	ListOpenFn          func(context.Context) ([]model.DeliveryJob, error)
	ListByTransporterFn func(context.Context, int64) ([]model.DeliveryJob, error)
	AcceptFn            func(context.Context, int64, int64, time.Time, time.Time) (*model.DeliveryJob, error)
	MarkPickedUpFn      func(context.Context, int64, int64) (*model.DeliveryJob, error)
	MarkDeliveredFn     func(context.Context, int64, int64) (*model.DeliveryJob, error)
	AbandonFn           func(context.Context, int64, int64) (*model.DeliveryJob, error)
	StatisticsFn        func(context.Context, int64) (*model.JobStatistics, error)
}

// GetByID delegates to provided function or returns not found.
func (s *DeliveryJobRepositoryStub) GetByID(ctx context.Context, id int64) (*model.DeliveryJob, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// ListOpen delegates to provided function or returns an empty slice.
func (s *DeliveryJobRepositoryStub) ListOpen(ctx context.Context) ([]model.DeliveryJob, error) {
	if s.ListOpenFn != nil {
		return s.ListOpenFn(ctx)
	}
	return nil, nil
}

// ListByTransporter delegates to provided function or returns an empty slice.
func (s *DeliveryJobRepositoryStub) ListByTransporter(ctx context.Context, transporterID int64) ([]model.DeliveryJob, error) {
	if s.ListByTransporterFn != nil {
		return s.ListByTransporterFn(ctx, transporterID)
	}
	return nil, nil
}

// Accept delegates to provided function or returns an accepted job.
func (s *DeliveryJobRepositoryStub) Accept(ctx context.Context, jobID, transporterID int64, estimatedPickup, estimatedDelivery time.Time) (*model.DeliveryJob, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, jobID, transporterID, estimatedPickup, estimatedDelivery)
	}
	return &model.DeliveryJob{
		ID:                    jobID,
		TransporterID:         &transporterID,
		Status:                model.JobStatusAccepted,
		EstimatedPickupDate:   &estimatedPickup,
		EstimatedDeliveryDate: &estimatedDelivery,
	}, nil
}

// MarkPickedUp delegates to provided function or returns not found.
func (s *DeliveryJobRepositoryStub) MarkPickedUp(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
	if s.MarkPickedUpFn != nil {
		return s.MarkPickedUpFn(ctx, jobID, transporterID)
	}
	return nil, domainErrors.ErrNotFound
}

// MarkDelivered delegates to provided function or returns not found.
func (s *DeliveryJobRepositoryStub) MarkDelivered(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
	if s.MarkDeliveredFn != nil {
		return s.MarkDeliveredFn(ctx, jobID, transporterID)
	}
	return nil, domainErrors.ErrNotFound
}

// Abandon delegates to provided function or returns not found.
func (s *DeliveryJobRepositoryStub) Abandon(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
	if s.AbandonFn != nil {
		return s.AbandonFn(ctx, jobID, transporterID)
	}
	return nil, domainErrors.ErrNotFound
}

// StatisticsByTransporter delegates to provided function or returns zeroes.
func (s *DeliveryJobRepositoryStub) StatisticsByTransporter(ctx context.Context, transporterID int64) (*model.JobStatistics, error) {
	if s.StatisticsFn != nil {
		return s.StatisticsFn(ctx, transporterID)
	}
	return &model.JobStatistics{ByStatus: map[model.JobStatus]int{}}, nil
}
