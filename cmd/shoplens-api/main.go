// cmd/shoplens-api/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoplens/internal/analytics"
	"shoplens/internal/api"
	"shoplens/internal/auth"
	"shoplens/internal/shopify"
	"shoplens/pkg/config"
	"shoplens/pkg/db"
	"shoplens/pkg/logger"
	"shoplens/pkg/tenants"
	"shoplens/pkg/tokens"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	pool := db.MustConnect(cfg, log)
	rdb := db.MustRedis(cfg, log)

	var store tenants.Store
	if pool != nil {
		if err := tenants.EnsureSchema(context.Background(), pool); err != nil {
			log.Fatalw("tenant schema", "err", err)
		}
		if err := analytics.EnsureSchema(context.Background(), pool); err != nil {
			log.Fatalw("usage schema", "err", err)
		}
		store = tenants.NewPostgresStore(pool, log)
	} else {
		store = tenants.NewMemoryStore()
	}
	if err := tenants.SeedFromFile(context.Background(), store, log, cfg.TenantSeedFile); err != nil {
		log.Warnw("tenant seed", "err", err)
	}

	var replay auth.ReplayStore
	if rdb != nil {
		replay = auth.NewRedisReplayStore(rdb)
	} else {
		replay = auth.NewMemoryReplayStore()
	}

	codec, err := tokens.NewCodec([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Fatalw("token codec", "err", err)
	}

	shopClient := shopify.New(cfg.ShopifyAPIVersion)
	authSvc := auth.NewService(store, codec, replay, shopClient, log)
	cookies := auth.NewCookieBinder(cfg.CookieDomain, cfg.CookieSecure, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	usage := analytics.NewRecorder(pool, log)

	app := api.New(log, store, authSvc, cookies, codec, shopClient, usage, api.Config{
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: app.Handler(cfg)}
	go func() {
		log.Infow("shoplens-api listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("ListenAndServe", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	if pool != nil {
		pool.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	fmt.Println("shoplens-api stopped")
}
