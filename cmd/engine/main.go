package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"khidi-engine/internal/analysis"
	"khidi-engine/internal/classify"
	"khidi-engine/internal/config"
	"khidi-engine/internal/crawl"
	"khidi-engine/internal/events"
	"khidi-engine/internal/httpapi"
	"khidi-engine/internal/pdfcache"
	"khidi-engine/internal/secrets"
	"khidi-engine/internal/session"
	"khidi-engine/internal/store"
)

func main() {
	_ = godotenv.Load()

	// Engine data dir: use env if provided (the frontend shell can pass one),
	// else local folder.
	dataDir := os.Getenv("KHIDI_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; the sqlite file and cache dir are not shared.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance holds %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	normalized, vr := config.NormalizeAndValidate(cfg)
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	for _, warn := range vr.Warnings {
		log.Printf("level=warn msg=\"config\" warning=%q", warn)
	}
	cfgVal.Store(normalized)

	dbPath := filepath.Join(dataDir, "khidi.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatal(err)
	}
	if err := db.SeedRecruitments(context.Background()); err != nil {
		log.Fatal(err)
	}

	cacheDir := filepath.Join(dataDir, "pdf_cache")
	pdfCache := pdfcache.New(cacheDir)

	hub := events.NewHub()
	sess := session.New()
	gen := analysis.NewGenerator(normalized.Analysis.Model)
	client := crawl.New()

	var crawlStatus atomic.Value
	crawlStatus.Store(crawl.Status{})

	runCollect := func(ctx context.Context, cfg config.Config) (int, error) {
		p := &crawl.Pipeline{
			Client:       client,
			PDF:          pdfCache,
			Store:        db,
			Classify:     classify.Categorize,
			ContentLimit: cfg.Crawl.ContentLimit,
			OnSaved: func(b store.Briefing) {
				hub.Publish(events.MakeEvent("", events.TypeBriefingSaved, 1, map[string]any{
					"url":      b.URL,
					"title":    b.Title,
					"category": b.Category,
				}))
			},
		}
		return p.Collect(ctx, cfg.Crawl.Boards, cfg.Crawl.MaxItems)
	}

	resolveAPIKey := func() string {
		if k := sess.APIKey(); k != "" {
			return k
		}
		if k := os.Getenv("GEMINI_API_KEY"); k != "" {
			return k
		}
		cur := cfgVal.Load().(config.Config)
		if k, err := secrets.GetGeminiKey(cur.Analysis.KeyringAccount); err == nil {
			return k
		}
		return ""
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:            db,
		Hub:           hub,
		Session:       sess,
		CfgVal:        &cfgVal,
		CrawlStatus:   &crawlStatus,
		UserCfgPath:   userCfgPath,
		LoadCfg:       loadCfg,
		CacheDir:      cacheDir,
		RunCollect:    runCollect,
		InBasket:      gen.InBasket,
		Forecast:      gen.Forecast,
		ResolveAPIKey: resolveAPIKey,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	port := normalized.App.Port
	if p := os.Getenv("PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-done
	log.Printf("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
