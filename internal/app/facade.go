package app

import (
	"context"

	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
	"github.com/agronhq/agron/internal/usecase"
)

// HealthChecker reports readiness of the backing storage.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// MarketFacade is the single entry point the HTTP layer talks to. It fans
// requests out to the marketplace use cases.
type MarketFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	orders   *usecase.OrderUseCase
	delivery *usecase.DeliveryUseCase
	health   HealthChecker
}

func NewMarketFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, delivery *usecase.DeliveryUseCase, health HealthChecker) *MarketFacade {
	return &MarketFacade{auth: auth, catalog: catalog, orders: orders, delivery: delivery, health: health}
}

func (f *MarketFacade) Register(ctx context.Context, login, password, role string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, role)
	return token, err
}

func (f *MarketFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *MarketFacade) ParseToken(token string) (model.Actor, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) CreateCrop(ctx context.Context, actor model.Actor, input usecase.CropInput) (*model.Crop, error) {
	return f.catalog.Create(ctx, actor, input)
}

func (f *MarketFacade) Crop(ctx context.Context, id int64) (*model.Crop, error) {
	return f.catalog.Get(ctx, id)
}

func (f *MarketFacade) Crops(ctx context.Context, filter repository.CropFilter) ([]model.Crop, error) {
	return f.catalog.List(ctx, filter)
}

func (f *MarketFacade) CropTypes(ctx context.Context) ([]string, error) {
	return f.catalog.Types(ctx)
}

func (f *MarketFacade) CropRegions(ctx context.Context) ([]string, error) {
	return f.catalog.Regions(ctx)
}

func (f *MarketFacade) UpdateCrop(ctx context.Context, actor model.Actor, cropID int64, input usecase.CropInput) (*model.Crop, error) {
	return f.catalog.Update(ctx, actor, cropID, input)
}

func (f *MarketFacade) UpdateCropStatus(ctx context.Context, actor model.Actor, cropID int64, status string) (*model.Crop, error) {
	return f.catalog.UpdateStatus(ctx, actor, cropID, status)
}

func (f *MarketFacade) DeleteCrop(ctx context.Context, actor model.Actor, cropID int64) error {
	return f.catalog.Delete(ctx, actor, cropID)
}

func (f *MarketFacade) PlaceOrder(ctx context.Context, actor model.Actor, input usecase.PlaceOrderInput) (*model.Order, error) {
	return f.orders.Place(ctx, actor, input)
}

func (f *MarketFacade) CancelOrder(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error) {
	return f.orders.Cancel(ctx, actor, orderID)
}

func (f *MarketFacade) UpdateOrderStatus(ctx context.Context, actor model.Actor, orderID int64, status string) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, actor, orderID, status)
}

func (f *MarketFacade) Order(ctx context.Context, actor model.Actor, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, actor, orderID)
}

func (f *MarketFacade) Orders(ctx context.Context, actor model.Actor, status string) ([]model.Order, error) {
	return f.orders.List(ctx, actor, status)
}

func (f *MarketFacade) OrderStatistics(ctx context.Context, actor model.Actor) (*model.OrderStatistics, error) {
	return f.orders.Statistics(ctx, actor)
}

func (f *MarketFacade) OpenJobs(ctx context.Context, actor model.Actor) ([]model.DeliveryJob, error) {
	return f.delivery.Board(ctx, actor)
}

func (f *MarketFacade) MyJobs(ctx context.Context, actor model.Actor) ([]model.DeliveryJob, error) {
	return f.delivery.Mine(ctx, actor)
}

func (f *MarketFacade) Job(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	return f.delivery.Get(ctx, actor, jobID)
}

func (f *MarketFacade) AcceptJob(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	return f.delivery.Accept(ctx, actor, jobID)
}

func (f *MarketFacade) MarkJobPickedUp(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	return f.delivery.MarkPickedUp(ctx, actor, jobID)
}

func (f *MarketFacade) MarkJobDelivered(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	return f.delivery.MarkDelivered(ctx, actor, jobID)
}

func (f *MarketFacade) AbandonJob(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	return f.delivery.Abandon(ctx, actor, jobID)
}

func (f *MarketFacade) JobStatistics(ctx context.Context, actor model.Actor) (*model.JobStatistics, error) {
	return f.delivery.Statistics(ctx, actor)
}

func (f *MarketFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
