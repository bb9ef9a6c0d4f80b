package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/campus-ledger/internal/auth"
	"github.com/heartmarshall/campus-ledger/internal/config"
	"github.com/heartmarshall/campus-ledger/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, opens the
// ledger backend and serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("driver", cfg.Database.Driver),
	)

	if cfg.Database.Driver == config.DriverMemory && (cfg.Ledger.GovernanceAdmin == "" || cfg.Ledger.WalletAdmin == "") {
		return errors.New("memory driver requires ledger.governance_admin and ledger.wallet_admin: no other process can initialize it")
	}

	be, err := OpenBackend(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open backend: %w", err)
	}
	defer be.Close()

	clock := clockwork.NewRealClock()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	svcs := NewServices(logger, be, clock)
	if err := svcs.Bootstrap(ctx, logger, cfg.Ledger); err != nil {
		return err
	}

	handler := NewRouter(RouterDeps{
		Logger:   logger,
		Config:   cfg,
		Backend:  be,
		Services: svcs,
		Tokens:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Limiter:  limiter,
		Clock:    clock,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
