package api

import (
	"go.uber.org/zap"

	"shoplens/internal/analytics"
	"shoplens/internal/auth"
	"shoplens/internal/shopify"
	"shoplens/pkg/tenants"
	"shoplens/pkg/tokens"
)

// Config holds api-specific configuration.
type Config struct {
	CORSOrigins []string
}

// App is the application container. Handlers and middleware have
// methods on this type.
//
// Keep it lean: shared deps and config only.
// Request-scoped work should use context.
type App struct {
	log     *zap.SugaredLogger
	store   tenants.Store
	auth    *auth.Service
	cookies *auth.CookieBinder
	codec   *tokens.Codec
	shop    *shopify.Client
	usage   *analytics.Recorder
	cfg     Config
}

func New(
	log *zap.SugaredLogger,
	store tenants.Store,
	authSvc *auth.Service,
	cookies *auth.CookieBinder,
	codec *tokens.Codec,
	shop *shopify.Client,
	usage *analytics.Recorder,
	cfg Config,
) *App {
	return &App{
		log:     log,
		store:   store,
		auth:    authSvc,
		cookies: cookies,
		codec:   codec,
		shop:    shop,
		usage:   usage,
		cfg:     cfg,
	}
}
