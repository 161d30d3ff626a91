// @title                       Voting System API
// @version                     1.0
// @description                 Candidate registry, one-vote-per-user ballot casting and public results.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/civicvote/voting-system/internal/api"
	"github.com/civicvote/voting-system/internal/api/handler"
	"github.com/civicvote/voting-system/internal/core/ports"
	"github.com/civicvote/voting-system/internal/core/service"
	"github.com/civicvote/voting-system/internal/infrastructure/config"
	mongostore "github.com/civicvote/voting-system/internal/infrastructure/db/mongo"
	redisstore "github.com/civicvote/voting-system/internal/infrastructure/db/redis"
	"github.com/civicvote/voting-system/internal/infrastructure/memory"
	"github.com/civicvote/voting-system/internal/infrastructure/queue"
	"github.com/civicvote/voting-system/pkg/logger"
)

// backend groups the storage adapters selected by STORE_BACKEND.
type backend struct {
	users      ports.UserRepository
	candidates ports.CandidateRepository
	recorder   ports.VoteRecorder
	lock       ports.VoteLock
	audit      ports.AuditRepository
	pingers    map[string]handler.Pinger
	close      func(ctx context.Context)
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Level: "error"})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "voting-api",
	})

	be, err := buildBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to initialise storage")
	}

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, be.audit, log)
	dispatcher.Start()

	authService := service.NewAuthService(be.users, cfg.JWTSecret, cfg.TokenTTL, log)
	e := api.NewRouter(api.Deps{
		Auth:       authService,
		Tokens:     authService,
		Admins:     service.NewAccessControl(be.users, log),
		Users:      service.NewUserService(be.users, log),
		Candidates: service.NewCandidateService(be.candidates, dispatcher, log),
		Voting:     service.NewVotingService(be.candidates, be.users, be.recorder, be.lock, dispatcher, log),
		Reports:    service.NewReportService(be.candidates),
		Pingers:    be.pingers,
		Logger:     log,
		Metrics:    true,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("voting api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	dispatcher.Stop(shutdownCtx)
	be.close(shutdownCtx)
}

func buildBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
	if cfg.StoreBackend == config.BackendMemory {
		store := memory.NewStore()
		log.Warn().Msg("using in-memory store; data is lost on restart")
		return &backend{
			users:      store,
			candidates: store.Candidates(),
			recorder:   store,
			lock:       memory.NewVoteLock(cfg.Redis.VoteLockTTL),
			audit:      store,
			pingers:    map[string]handler.Pinger{"memory": store},
			close:      func(context.Context) {},
		}, nil
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &backend{
		users:      mongostore.NewUserRepository(db),
		candidates: mongostore.NewCandidateRepository(db),
		recorder:   mongostore.NewVoteRecorder(db, cfg.Mongo.Transactions, log),
		lock:       redisstore.NewVoteLock(rdb, cfg.Redis.VoteLockTTL),
		audit:      mongostore.NewAuditRepository(db),
		pingers: map[string]handler.Pinger{
			"mongodb": mongostore.NewPinger(db),
			"redis":   redisstore.NewPinger(rdb),
		},
		close: func(ctx context.Context) {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close")
			}
			if err := client.Disconnect(ctx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		},
	}, nil
}
