package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"apartment-journey/config"
	httpLayer "apartment-journey/http"
	"apartment-journey/pkg/application/connectors"
	"apartment-journey/pkg/application/modules"
	"apartment-journey/pkg/contextx"
	"apartment-journey/pkg/logx"
	"apartment-journey/pkg/middlewarex"
	"apartment-journey/pkg/probe"
	"apartment-journey/repository"
	"apartment-journey/service"
)

const memoryCacheCleanup = 10 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("apartment-journey stopped", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.NewLogger(os.Stdout, logx.ParseLevel(cfg.App.LogLevel), cfg.App.NoColor).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)
	ctx = contextx.WithLogger(ctx, log)

	policy := newPolicy(cfg.Policy)
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("policy.Validate: %w", err)
	}

	var (
		cache  repository.CacheRepository
		checks []probe.ReadinessCheck
	)

	if cfg.Redis.Enabled {
		rdb := &connectors.Redis{
			Address:        cfg.Redis.Address,
			Password:       cfg.Redis.Password,
			DatabaseNumber: cfg.Redis.DatabaseNumber,
			PoolSize:       cfg.Redis.PoolSize,
		}
		defer rdb.Close(ctx)

		cache = repository.NewRedisCache(rdb.Client(ctx))
		checks = append(checks, rdb.Ping)
	} else {
		log.Warn("redis disabled, wizard sessions are kept in memory")
		cache = repository.NewMemoryCache(cfg.Session.TTL, memoryCacheCleanup)
	}

	sessions := repository.NewCacheSessionRepository(cache, cfg.Session.TTL)

	tax := service.NewTaxEngine(policy)
	deals := service.NewDealService(policy, tax)
	affordability := service.NewAffordabilityService(service.NewSolver(policy, tax))
	terms := service.NewTermComparisonService(policy)
	wizard := service.NewWizardService(sessions, deals, affordability)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger(log),
		middlewarex.ResponseLogging(cfg.HTTP.LogFieldMaxLen),
		middlewarex.Recovery,
		rateLimiter.Middleware,
	)

	httpLayer.NewServer(deals, affordability, terms, wizard).RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        checks,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	g.Go(func() error {
		return rateLimiter.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	log.Info("apartment-journey exited")

	return nil
}

func newPolicy(cfg config.Policy) service.Policy {
	return service.Policy{
		VATRate:             cfg.VATRate,
		AgentRate:           cfg.AgentRate,
		LawyerRate:          cfg.LawyerRate,
		AdvisorRate:         cfg.AdvisorRate,
		AdvisorMinimum:      cfg.AdvisorMinimum,
		CitizenFirstHomeLTV: cfg.CitizenFirstHomeLTV,
		StandardLTV:         cfg.StandardLTV,
		PaymentPerMillion: map[int]float64{
			20: cfg.PaymentPerMillion20,
			30: cfg.PaymentPerMillion30,
		},
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	}
}
