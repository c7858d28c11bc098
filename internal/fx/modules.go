package fx

import (
	"eloget/internal/api"
	"eloget/internal/config"
	"eloget/internal/logger"
	"eloget/internal/runner"
	"eloget/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideClient(cfg *config.Config, logger zerolog.Logger) *api.Client {
	return api.NewClient(cfg, logger)
}

// ProvideRegistry is the one place a new source has to be added.
func ProvideRegistry(chesscom *service.ChessComSource, lichess *service.LichessSource) *service.Registry {
	return service.NewRegistry(chesscom, lichess)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(ProvideClient),
	// sources
	fx.Provide(service.NewChessComSource),
	fx.Provide(service.NewLichessSource),
	fx.Provide(ProvideRegistry),
	// dispatcher
	fx.Provide(runner.NewRunner),
)
