package fx

import (
	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/logger"
	"pickem-tracker/internal/server"
	"pickem-tracker/internal/service"
	"pickem-tracker/internal/store"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// persistence
	fx.Provide(store.New),
	// api client
	fx.Provide(api.NewESPNClient),
	// svc
	fx.Provide(service.NewEntryService),
	fx.Provide(service.NewLookupService),
	// server
	fx.Provide(server.NewPickemServer),
	fx.Provide(server.NewRouter),
)
