package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "alx_listing/internal/adapters/http_server"
	"alx_listing/internal/adapters/observability"
	redisad "alx_listing/internal/adapters/redis"
	"alx_listing/internal/app"
	"alx_listing/internal/domain"
	"alx_listing/internal/shared"
	"alx_listing/internal/ui"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// page cache is optional
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		defer rc.Close()
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis connection ok")
		cache = rc
	}

	pages := app.NewPageService(ui.Pages(ui.WithStylesheet(cfg.Stylesheet)), cache, cfg.CacheTTL)
	for _, name := range pages.Names() {
		if err := pages.Invalidate(ctx, name); err != nil {
			log.Warn().Err(err).Str("page", name).Msg("cache invalidation failed")
		}
	}

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Pages:     pages,
		PublicDir: cfg.PublicDir,
		Actions:   rate.NewLimiter(rate.Limit(cfg.ActionRPS), cfg.ActionRPS),
	})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("public", cfg.PublicDir).Msg("web listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("web stopped")
}
