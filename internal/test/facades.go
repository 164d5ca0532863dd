package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
	"github.com/agronhq/agron/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (model.Actor, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password, role string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password, role)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns the stored actor for authenticated requests.
func (s AuthFacadeStub) ParseToken(token string) (model.Actor, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Actor{ID: 1, Role: model.RoleBuyer}, nil
}

// CropFacadeStub provides controllable behaviour for catalog endpoints.
type CropFacadeStub struct {
	CreateFn       func(context.Context, model.Actor, usecase.CropInput) (*model.Crop, error)
	GetFn          func(context.Context, int64) (*model.Crop, error)
	ListFn         func(context.Context, repository.CropFilter) ([]model.Crop, error)
	UpdateFn       func(context.Context, model.Actor, int64, usecase.CropInput) (*model.Crop, error)
	UpdateStatusFn func(context.Context, model.Actor, int64, string) (*model.Crop, error)
	DeleteFn       func(context.Context, model.Actor, int64) error
	TypesFn        func(context.Context) ([]string, error)
	RegionsFn      func(context.Context) ([]string, error)
}

// CreateCrop delegates to provided function or echoes the input.
func (s CropFacadeStub) CreateCrop(ctx context.Context, actor model.Actor, input usecase.CropInput) (*model.Crop, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, input)
	}
	return &model.Crop{ID: 1, FarmerID: actor.ID, Name: input.Name, Quantity: input.Quantity, Unit: input.Unit, Price: input.Price, Status: model.CropStatusAvailable}, nil
}

// Crop returns a predefined listing.
func (s CropFacadeStub) Crop(ctx context.Context, id int64) (*model.Crop, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Crop{ID: id, Name: "Maize", Quantity: decimal.NewFromInt(100), Unit: "kg", Price: decimal.NewFromInt(5000), Status: model.CropStatusAvailable}, nil
}

// Crops returns predefined listings.
func (s CropFacadeStub) Crops(ctx context.Context, filter repository.CropFilter) ([]model.Crop, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return []model.Crop{{ID: 1, Name: "Maize"}}, nil
}

// CropTypes returns predefined type names.
func (s CropFacadeStub) CropTypes(ctx context.Context) ([]string, error) {
	if s.TypesFn != nil {
		return s.TypesFn(ctx)
	}
	return []string{"grain"}, nil
}

// CropRegions returns predefined region names.
func (s CropFacadeStub) CropRegions(ctx context.Context) ([]string, error) {
	if s.RegionsFn != nil {
		return s.RegionsFn(ctx)
	}
	return []string{"Kaduna"}, nil
}

// UpdateCrop delegates to provided function or echoes the input.
func (s CropFacadeStub) UpdateCrop(ctx context.Context, actor model.Actor, cropID int64, input usecase.CropInput) (*model.Crop, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, cropID, input)
	}
	return &model.Crop{ID: cropID, FarmerID: actor.ID, Name: input.Name}, nil
}

// UpdateCropStatus delegates to provided function or echoes the status.
func (s CropFacadeStub) UpdateCropStatus(ctx context.Context, actor model.Actor, cropID int64, status string) (*model.Crop, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, actor, cropID, status)
	}
	return &model.Crop{ID: cropID, FarmerID: actor.ID, Status: model.CropStatus(status)}, nil
}

// DeleteCrop delegates to provided function or succeeds.
func (s CropFacadeStub) DeleteCrop(ctx context.Context, actor model.Actor, cropID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, cropID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, model.Actor, usecase.PlaceOrderInput) (*model.Order, error)
	CancelFn       func(context.Context, model.Actor, int64) (*model.Order, error)
	UpdateStatusFn func(context.Context, model.Actor, int64, string) (*model.Order, error)
	GetFn          func(context.Context, model.Actor, int64) (*model.Order, error)
	ListFn         func(context.Context, model.Actor, string) ([]model.Order, error)
	StatisticsFn   func(context.Context, model.Actor) (*model.OrderStatistics, error)
}

// PlaceOrder delegates to provided function or returns a pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, actor model.Actor, input usecase.PlaceOrderInput) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, actor, input)
	}
	return &model.Order{ID: 1, CropID: input.CropID, BuyerID: actor.ID, Quantity: input.Quantity, Status: model.OrderStatusPending}, nil
}

// CancelOrder delegates to provided function or returns a cancelled order.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID, BuyerID: actor.ID, Status: model.OrderStatusCancelled}, nil
}

// UpdateOrderStatus delegates to provided function or echoes the status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, actor model.Actor, orderID int64, status string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, actor, orderID, status)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatus(status)}, nil
}

// Order delegates to provided function or returns a pending order.
func (s OrderFacadeStub) Order(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID, BuyerID: actor.ID, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined orders for the actor.
func (s OrderFacadeStub) Orders(ctx context.Context, actor model.Actor, status string) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor, status)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
}

// OrderStatistics returns predefined aggregates.
func (s OrderFacadeStub) OrderStatistics(ctx context.Context, actor model.Actor) (*model.OrderStatistics, error) {
	if s.StatisticsFn != nil {
		return s.StatisticsFn(ctx, actor)
	}
	return &model.OrderStatistics{Total: 1, ByStatus: map[model.OrderStatus]int{model.OrderStatusPending: 1}}, nil
}

// JobFacadeStub provides controllable behaviour for delivery job endpoints.
type JobFacadeStub struct {
	OpenJobsFn  func(context.Context, model.Actor) ([]model.DeliveryJob, error)
	MyJobsFn    func(context.Context, model.Actor) ([]model.DeliveryJob, error)
	GetFn       func(context.Context, model.Actor, int64) (*model.DeliveryJob, error)
	AcceptFn    func(context.Context, model.Actor, int64) (*model.DeliveryJob, error)
	PickupFn    func(context.Context, model.Actor, int64) (*model.DeliveryJob, error)
	DeliveredFn  func(context.Context, model.Actor, int64) (*model.DeliveryJob, error)
	AbandonFn    func(context.Context, model.Actor, int64) (*model.DeliveryJob, error)
	StatisticsFn func(context.Context, model.Actor) (*model.JobStatistics, error)
}

// OpenJobs returns the predefined board.
func (s JobFacadeStub) OpenJobs(ctx context.Context, actor model.Actor) ([]model.DeliveryJob, error) {
	if s.OpenJobsFn != nil {
		return s.OpenJobsFn(ctx, actor)
	}
	return []model.DeliveryJob{{ID: 1, Status: model.JobStatusOpen}}, nil
}

// MyJobs returns the transporter's predefined jobs.
func (s JobFacadeStub) MyJobs(ctx context.Context, actor model.Actor) ([]model.DeliveryJob, error) {
	if s.MyJobsFn != nil {
		return s.MyJobsFn(ctx, actor)
	}
	return []model.DeliveryJob{{ID: 2, TransporterID: &actor.ID, Status: model.JobStatusAccepted}}, nil
}

// Job returns a predefined job.
func (s JobFacadeStub) Job(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, jobID)
	}
	return &model.DeliveryJob{ID: jobID, Status: model.JobStatusOpen}, nil
}

// AcceptJob delegates to provided function or claims the job.
func (s JobFacadeStub) AcceptJob(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, actor, jobID)
	}
	return &model.DeliveryJob{ID: jobID, TransporterID: &actor.ID, Status: model.JobStatusAccepted}, nil
}

// MarkJobPickedUp delegates to provided function or marks pickup.
func (s JobFacadeStub) MarkJobPickedUp(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if s.PickupFn != nil {
		return s.PickupFn(ctx, actor, jobID)
	}
	return &model.DeliveryJob{ID: jobID, TransporterID: &actor.ID, Status: model.JobStatusPickedUp}, nil
}

// MarkJobDelivered delegates to provided function or marks delivery.
func (s JobFacadeStub) MarkJobDelivered(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if s.DeliveredFn != nil {
		return s.DeliveredFn(ctx, actor, jobID)
	}
	return &model.DeliveryJob{ID: jobID, TransporterID: &actor.ID, Status: model.JobStatusDelivered}, nil
}

// AbandonJob delegates to provided function or reopens the job.
func (s JobFacadeStub) AbandonJob(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if s.AbandonFn != nil {
		return s.AbandonFn(ctx, actor, jobID)
	}
	return &model.DeliveryJob{ID: jobID, Status: model.JobStatusOpen}, nil
}

// JobStatistics returns predefined aggregates.
func (s JobFacadeStub) JobStatistics(ctx context.Context, actor model.Actor) (*model.JobStatistics, error) {
	if s.StatisticsFn != nil {
		return s.StatisticsFn(ctx, actor)
	}
	return &model.JobStatistics{Total: 1, ByStatus: map[model.JobStatus]int{model.JobStatusAccepted: 1}}, nil
}

// HealthFacadeStub reports configurable readiness.
type HealthFacadeStub struct {
	Err error
}

// Health returns the configured readiness error.
func (s HealthFacadeStub) Health(context.Context) error {
	return s.Err
}

// MarketFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	CropFacadeStub
	OrderFacadeStub
	JobFacadeStub
	HealthFacadeStub
}
