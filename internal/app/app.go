package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/lottoshop/internal/config"
	"github.com/GlebRadaev/lottoshop/internal/feed"
	"github.com/GlebRadaev/lottoshop/internal/handlers"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/internal/repo"
	"github.com/GlebRadaev/lottoshop/internal/service"
	"github.com/GlebRadaev/lottoshop/internal/verification"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/clients"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
	"github.com/GlebRadaev/lottoshop/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	hub      *feed.Hub
	feed     *feed.Service
	verifier *verification.Processor

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if err := a.build(); err != nil {
		return err
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWorkers(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// build wires storage, services and handlers from a.cfg.
func (a *Application) build() error {
	cfg := a.cfg
	hash := &auth.HashService{}

	adminHash, err := hash.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("can't hash admin password: %w", err)
	}
	ids, err := idgen.NewSnowflake(cfg.SnowflakeNode)
	if err != nil {
		return fmt.Errorf("can't build id generator: %w", err)
	}

	db := memdb.New(memdb.Seed(memdb.SeedOptions{
		AdminEmail:        cfg.AdminEmail,
		AdminPasswordHash: adminHash,
		TicketUnitPrice:   decimal.NewFromFloat(cfg.TicketUnitPrice),
	}))

	a.repo = repo.New(db)
	a.hub = feed.NewHub()
	a.feed = feed.New(a.repo.FeedRepo, a.repo.UserRepo, a.hub, ids, cfg.FeedCapacity, cfg.FeedInterval)
	a.verifier = verification.NewProcessor(
		verification.NewSimulatedGateway(cfg.VerificationDelay),
		verification.NewWorkerPool(cfg.VerificationWorkers),
	)

	tokens := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(cfg, a.repo, service.Deps{
		TxManager:  memdb.NewTXManager(db),
		Verifier:   a.verifier,
		Feed:       a.feed,
		HTTPClient: clients.NewHTTPClient(),
		IDs:        ids,
		CatalogIDs: idgen.UUID{},
		Hash:       hash,
		JWT:        tokens,
	})
	a.api = handlers.New(a.srv, a.feed, a.hub, tokens, cfg.CorsOrigins)
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startWorkers runs the websocket hub and the feed simulator until ctx is
// done.
func (a *Application) startWorkers(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error { return a.hub.Run(gCtx) })
		g.Go(func() error { return a.feed.Run(gCtx) })
		if err := g.Wait(); err != nil {
			a.errCh <- fmt.Errorf("background workers exited with error: %w", err)
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	// Handlers have drained by now, so no task can reach a closed pool.
	if a.verifier != nil {
		a.verifier.Close()
	}

	return appErr
}
