package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"caritasAPI/internal/config"
	"caritasAPI/internal/database"
	handlers "caritasAPI/internal/handler"
	"caritasAPI/internal/models"
	"caritasAPI/internal/payment"
	"caritasAPI/internal/repository"
	"caritasAPI/internal/service"
)

const shutdownTimeout = 10 * time.Second

// NewLogger builds the process logger. Development config is used when APP_ENV=development.
func NewLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapCfg.Build()
}

// App connects to the store, applies the schema and wires the service layer.
// The caller owns the returned connection.
func App(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*database.DB, *service.Service, error) {
	db, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := db.RunMigrations(ctx); err != nil {
		db.CloseDB()
		return nil, nil, err
	}

	repo := repository.NewRepository(db)

	services, err := service.NewService(repo, cfg, payment.NewSimulatedProcessor())
	if err != nil {
		db.CloseDB()
		return nil, nil, err
	}

	return db, services, nil
}

// Serve runs the HTTP server until ctx is cancelled or SIGINT/SIGTERM arrives.
func Serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, services, err := App(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	if cfg.Admin.Password != "" {
		created, err := services.User.EnsureAdmin(ctx, cfg.Admin)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		if created {
			logger.Info("admin account created", zap.String("username", cfg.Admin.Username))
		}
	}

	h := handlers.NewHandlers(services, db, logger)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           handlers.NewRouter(h, cfg.CORSOrigin),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("driver", cfg.DB.Driver),
			zap.Bool("live_content", services.Content.UsesRealData()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// Migrate applies the schema and default settings, then closes the connection.
func Migrate(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	if err := db.RunMigrations(ctx); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}

// CreateAdmin registers an admin account directly in the store.
func CreateAdmin(ctx context.Context, cfg *config.Config, logger *zap.Logger, req models.RegisterRequest) error {
	db, services, err := App(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	user, err := services.User.Register(ctx, req)
	if err != nil {
		return err
	}

	logger.Info("admin account created",
		zap.Int64("id", user.ID),
		zap.String("username", user.Username))
	fmt.Fprintf(os.Stdout, "created admin %q (id %d)\n", user.Username, user.ID)
	return nil
}
