package app

import (
	"context"
	"log/slog"

	httpapp "github.com/ANSH5252/LivePulse/internal/app/http"
	"github.com/ANSH5252/LivePulse/internal/broadcast"
	"github.com/ANSH5252/LivePulse/internal/config"
	"github.com/ANSH5252/LivePulse/internal/handlers"
	"github.com/ANSH5252/LivePulse/internal/lib/votecode"
	"github.com/ANSH5252/LivePulse/internal/middleware"
	"github.com/ANSH5252/LivePulse/internal/repo/postgres"
	redisrepo "github.com/ANSH5252/LivePulse/internal/repo/redis"
	"github.com/ANSH5252/LivePulse/internal/services"
	"github.com/ANSH5252/LivePulse/internal/syncer"
)

type App struct {
	HTTPServer *httpapp.App
	Hub        *broadcast.Hub
	Syncer     *syncer.Syncer
	Voting     *services.LiveVoting

	storage *postgres.Storage
	counter *redisrepo.Counter
}

func NewApp(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		panic(err)
	}

	counter, err := redisrepo.New(cfg.Redis.Addr)
	if err != nil {
		panic(err)
	}

	hub := broadcast.NewHub(log)

	codegen := votecode.NewGenerator(cfg.Codes.Alphabet, cfg.Codes.Length)

	votingService := services.NewLiveVoting(log, storage, storage, storage, storage, storage, counter, hub, codegen)
	votingHandler := handlers.NewVotingHandler(votingService, hub)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	httpApp := httpapp.NewApp(log, cfg.HTTP.Port, votingHandler, authMiddleware.Middleware(), authMiddleware.Optional())

	syncWorker := syncer.New(log, counter, storage, cfg.Sync.Interval)

	return &App{
		HTTPServer: httpApp,
		Hub:        hub,
		Syncer:     syncWorker,
		Voting:     votingService,
		storage:    storage,
		counter:    counter,
	}
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return err
	}
	if err := a.counter.Close(); err != nil {
		return err
	}
	return a.storage.Close()
}
