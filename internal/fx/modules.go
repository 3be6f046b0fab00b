package fx

import (
	"handball-tracker/internal/api"
	"handball-tracker/internal/config"
	"handball-tracker/internal/corpus"
	"handball-tracker/internal/database"
	"handball-tracker/internal/logger"
	"handball-tracker/internal/repository"
	"handball-tracker/internal/server"
	"handball-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideRoundStore(repo *repository.RoundRepository) corpus.RoundStore {
	return repo
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewRoundRepository),
	fx.Provide(ProvideRoundStore),
	// crawler client + corpus cache
	fx.Provide(api.NewCrawlerClient),
	fx.Provide(corpus.New),
	// svc
	fx.Provide(service.NewLeagueService),
	// server
	fx.Provide(server.NewStatsServer),
)
