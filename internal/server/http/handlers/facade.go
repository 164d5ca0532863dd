package handlers

import (
	"context"

	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
	"github.com/agronhq/agron/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password, role string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (model.Actor, error)
}

// CropFacade encapsulates catalog operations exposed via HTTP.
type CropFacade interface {
	CreateCrop(ctx context.Context, actor model.Actor, input usecase.CropInput) (*model.Crop, error)
	Crop(ctx context.Context, id int64) (*model.Crop, error)
	Crops(ctx context.Context, filter repository.CropFilter) ([]model.Crop, error)
	CropTypes(ctx context.Context) ([]string, error)
	CropRegions(ctx context.Context) ([]string, error)
	UpdateCrop(ctx context.Context, actor model.Actor, cropID int64, input usecase.CropInput) (*model.Crop, error)
	UpdateCropStatus(ctx context.Context, actor model.Actor, cropID int64, status string) (*model.Crop, error)
	DeleteCrop(ctx context.Context, actor model.Actor, cropID int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, actor model.Actor, input usecase.PlaceOrderInput) (*model.Order, error)
	CancelOrder(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, actor model.Actor, orderID int64, status string) (*model.Order, error)
	Order(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error)
	Orders(ctx context.Context, actor model.Actor, status string) ([]model.Order, error)
	OrderStatistics(ctx context.Context, actor model.Actor) (*model.OrderStatistics, error)
}

// JobFacade encapsulates delivery job operations exposed via HTTP.
type JobFacade interface {
	OpenJobs(ctx context.Context, actor model.Actor) ([]model.DeliveryJob, error)
	MyJobs(ctx context.Context, actor model.Actor) ([]model.DeliveryJob, error)
	Job(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error)
	AcceptJob(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error)
	MarkJobPickedUp(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error)
	MarkJobDelivered(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error)
	AbandonJob(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error)
	JobStatistics(ctx context.Context, actor model.Actor) (*model.JobStatistics, error)
}

// HealthFacade reports storage readiness.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	CropFacade
	OrderFacade
	JobFacade
	HealthFacade
}
