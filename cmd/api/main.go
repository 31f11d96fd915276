package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "github.com/stayfront/mockstay/internal/adapters/http_server"
	"github.com/stayfront/mockstay/internal/adapters/observability"
	redisad "github.com/stayfront/mockstay/internal/adapters/redis"
	"github.com/stayfront/mockstay/internal/app"
	"github.com/stayfront/mockstay/internal/domain"
	"github.com/stayfront/mockstay/internal/shared"
	"github.com/stayfront/mockstay/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// deps
	store := memory.New()
	var sessions domain.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		sessions = redisad.NewSessions(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionPrefix)
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis session backend")
	default:
		sessions = memory.NewSessions()
	}

	auth := app.NewAuthService(store, sessions)
	q := app.NewQueryService(store)
	cmds := app.NewCommandService(store)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Auth: auth, Q: q, C: cmds, Assets: cfg.AssetDir})

	log.Info().Str("addr", cfg.HTTPAddr).Str("assets", cfg.AssetDir).Msg("API listening")
	log.Info().Msg("demo credentials: admin/admin123 (admin), user1/password (user)")

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
