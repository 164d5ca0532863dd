package di

import (
	"go.uber.org/fx"

	"github.com/agronhq/agron/internal/app"
	"github.com/agronhq/agron/internal/config"
	"github.com/agronhq/agron/internal/logger"
	"github.com/agronhq/agron/internal/pkg/auth"
	"github.com/agronhq/agron/internal/server/http/router"
	"github.com/agronhq/agron/internal/storage/postgres"
	"github.com/agronhq/agron/internal/usecase"
)

// Module assembles the full application graph. Options passed in override
// default providers, which tests use to swap storage for stubs.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
