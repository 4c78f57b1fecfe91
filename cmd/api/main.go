package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sikeu/finance-api/internal/api"
	"github.com/sikeu/finance-api/internal/api/handler"
	"github.com/sikeu/finance-api/internal/core/domain"
	"github.com/sikeu/finance-api/internal/core/ports"
	"github.com/sikeu/finance-api/internal/core/service"
	redisdb "github.com/sikeu/finance-api/internal/infrastructure/db/redis"
	"github.com/sikeu/finance-api/internal/infrastructure/queue"
	"github.com/sikeu/finance-api/internal/infrastructure/security"
	"github.com/sikeu/finance-api/internal/pkg/config"
	"github.com/sikeu/finance-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "finance-api",
	})

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("store close failed")
		}
	}()
	log.Info().Str("driver", cfg.Store.Driver).Msg("store connected")

	checks := []handler.HealthCheck{st.health}

	var throttle ports.LoginThrottle
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		throttle = redisdb.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginLockout)
		checks = append(checks, handler.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttling enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, login throttling disabled")
	}

	tokens, err := security.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	// The audit writer outlives the signal context so it can flush after the
	// HTTP server has drained.
	auditCtx, stopAudit := context.WithCancel(context.Background())
	defer stopAudit()
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, st.audit, logger.Component("audit"))
	dispatcher.Start(auditCtx)

	authService := service.NewAuthService(service.AuthDependencies{
		Users:    st.users,
		Hasher:   security.NewPasswordHasher(cfg.Auth.BcryptCost),
		Tokens:   tokens,
		Throttle: throttle,
		Log:      logger.Component("auth"),
	})

	e := api.NewRouter(api.Dependencies{
		Auth:         authService,
		Tokens:       tokens,
		Receivables:  service.NewRecordService[domain.PiutangPelanggan](st.receivables, dispatcher),
		Payments:     service.NewRecordService[domain.PembayaranPiutang](st.payments, dispatcher),
		Projects:     service.NewRecordService[domain.Proyek](st.projects, dispatcher),
		Costs:        service.NewRecordService[domain.BiayaProyek](st.costs, dispatcher),
		HealthChecks: checks,
		Log:          logger.Component("http"),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := e.Shutdown(shutdownCtx)

		stopAudit()
		dispatcher.Wait()
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
