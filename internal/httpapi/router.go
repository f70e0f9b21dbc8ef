package httpapi

import "net/http"

// NewMux wires the dashboard actions to their handlers.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Briefings
	bh := BriefingsHandler{DB: d.DB, Session: d.Session}
	mux.HandleFunc("/briefings", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: bh.List,
	}))

	// Analysis (per-briefing, plus the forecast)
	ah := AnalysisHandler{
		DB:            d.DB,
		Hub:           d.Hub,
		Session:       d.Session,
		InBasket:      d.InBasket,
		Forecast:      d.Forecast,
		ResolveAPIKey: d.ResolveAPIKey,
	}
	mux.HandleFunc("/briefings/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.AnalyzeByPath, // expects /briefings/{id}/analyze
	}))
	mux.HandleFunc("/forecast", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  ah.LastForecast,
		http.MethodPost: ah.RunForecast,
	}))

	// Recruitments
	rh := RecruitmentsHandler{DB: d.DB}
	mux.HandleFunc("/recruitments", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.List,
	}))
	mux.HandleFunc("/recruitments/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Stats,
	}))

	// Crawl
	ch := CrawlHandler{
		CfgVal:      d.CfgVal,
		CrawlStatus: d.CrawlStatus,
		Hub:         d.Hub,
		RunCollect:  d.RunCollect,
	}
	mux.HandleFunc("/crawl/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Status,
	}))
	mux.HandleFunc("/crawl/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.Run,
	}))

	// Store maintenance
	dh := DBHandler{DB: d.DB, Hub: d.Hub, Session: d.Session, CacheDir: d.CacheDir}
	mux.HandleFunc("/reset", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dh.Reset,
	}))
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dh.Checkpoint,
	}))

	// Config
	cfgh := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfgh.Get,
		http.MethodPut: cfgh.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfgh.Path,
	}))

	// Secrets (session + keychain)
	sh := SecretsHandler{CfgVal: d.CfgVal, Session: d.Session}
	mux.HandleFunc("/api/secrets/gemini", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetGeminiKey,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
