package httpapi

import (
	"context"
	"sync/atomic"

	"khidi-engine/internal/config"
	"khidi-engine/internal/events"
	"khidi-engine/internal/session"
	"khidi-engine/internal/store"
)

type Deps struct {
	DB  *store.DB
	Hub *events.Hub

	// Session display state: last analyses, last forecast, session API key.
	Session *session.Store

	// Atomic stores
	CfgVal      *atomic.Value // stores config.Config
	CrawlStatus *atomic.Value // stores crawl.Status

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// PDF cache dir, wiped on reset.
	CacheDir string

	// Pipeline entrypoint (inject for testability)
	RunCollect func(ctx context.Context, cfg config.Config) (saved int, err error)

	// Generators (inject for testability)
	InBasket func(ctx context.Context, apiKey, title, content string) string
	Forecast func(ctx context.Context, apiKey string) string

	// ResolveAPIKey falls back through session key, environment, keychain.
	ResolveAPIKey func() string
}
