package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"digital_mechanic/internal/app/di"
	"digital_mechanic/internal/app/router"
	authhandler "digital_mechanic/internal/feature/auth/transport/handler"
	authusecase "digital_mechanic/internal/feature/auth/usecase"
	vehiclehandler "digital_mechanic/internal/feature/vehicles/transport/handler"
	"digital_mechanic/internal/platform/config"
	"digital_mechanic/internal/platform/logging"
	infraredis "digital_mechanic/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Log.Format, cfg.Log.Level)
	slog.SetDefault(logger)

	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// store
	store, err := di.NewStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Redisキャッシュでラップ
	vehicleRepo := di.NewVehicleRepository(rdb, cfg.Redis.CacheTTL, store.Vehicles)

	// Usecase
	authUC := authusecase.NewAuthUsecase(store.Users)
	vehicleUC := di.NewVehicleUsecase(vehicleRepo, store.Users, cfg.Registry.EnforceOwner)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	vehicleH := vehiclehandler.NewVehicleHandler(vehicleUC)

	// ルータ生成
	engine := router.NewRouter(logger, cfg.CORS.AllowedOrigins, authH, vehicleH)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "store", cfg.Store.Driver, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
