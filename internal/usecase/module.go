package usecase

import (
	"go.uber.org/fx"

	"github.com/agronhq/agron/internal/config"
	"github.com/agronhq/agron/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCatalogUseCase,
	NewOrderUseCase,
	newDeliveryUseCase,
)

type deliveryParams struct {
	fx.In

	Jobs   repository.DeliveryJobRepository
	Config *config.Config
}

func newDeliveryUseCase(p deliveryParams) *DeliveryUseCase {
	return NewDeliveryUseCase(p.Jobs, p.Config.PickupLeadTime, p.Config.DeliveryLeadTime)
}
