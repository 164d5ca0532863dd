package router

import (
	"go.uber.org/fx"

	"github.com/agronhq/agron/internal/app"
	"github.com/agronhq/agron/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(facade *app.MarketFacade) handlers.MarketFacade { return facade }),
	fx.Provide(Setup),
)
