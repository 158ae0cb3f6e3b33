// Package groweasytracker собирает основное HTTP-приложение: хранилище,
// кеш, сервисы и маршруты.
package groweasytracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/shobhanapappu/groweasytracker/internal/cache"
	"github.com/shobhanapappu/groweasytracker/internal/config"
	"github.com/shobhanapappu/groweasytracker/internal/lib/jwt"
	"github.com/shobhanapappu/groweasytracker/internal/migrations"
	"github.com/shobhanapappu/groweasytracker/internal/paymentprovider"
	authservice "github.com/shobhanapappu/groweasytracker/internal/services/auth"
	dashboardservice "github.com/shobhanapappu/groweasytracker/internal/services/dashboard"
	exportservice "github.com/shobhanapappu/groweasytracker/internal/services/export"
	paymentservice "github.com/shobhanapappu/groweasytracker/internal/services/payment"
	recordsservice "github.com/shobhanapappu/groweasytracker/internal/services/records"
	subservice "github.com/shobhanapappu/groweasytracker/internal/services/subscription"
	"github.com/shobhanapappu/groweasytracker/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	authService := authservice.NewAuthService(db, jwtMaker)
	subscriptionService := subservice.NewSubscriptionService(db, cacheRedis, logger)
	recordsService := recordsservice.NewRecordsService(db, cacheRedis, logger)
	dashboardService := dashboardservice.NewDashboardService(db, cacheRedis, logger)
	exportService := exportservice.NewExportService(dashboardService)
	paymentService := paymentservice.New(providerClient, db, subscriptionService,
		cfg.Razorpay.WebhookSecret, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:         authService,
		Subscription: subscriptionService,
		Records:      recordsService,
		Dashboard:    dashboardService,
		Export:       exportService,
		Payment:      paymentService,
	})

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
