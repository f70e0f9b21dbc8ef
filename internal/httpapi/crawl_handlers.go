package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"khidi-engine/internal/config"
	"khidi-engine/internal/crawl"
	"khidi-engine/internal/events"
)

type CrawlHandler struct {
	CfgVal      *atomic.Value // config.Config
	CrawlStatus *atomic.Value // crawl.Status
	Hub         *events.Hub
	RunCollect  func(ctx context.Context, cfg config.Config) (saved int, err error)
}

func (h CrawlHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.CrawlStatus.Load().(crawl.Status)
	writeJSON(w, st)
}

// Run triggers collect-now. The pipeline itself walks boards and articles
// strictly in order; the handler only moves it off the request goroutine so
// the dashboard can poll status meanwhile. A second trigger while one is
// running is refused.
func (h CrawlHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.CrawlStatus.Load().(crawl.Status)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	// CompareAndSwap so concurrent triggers admit exactly one pipeline.
	start := crawl.Status{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastError: "",
		LastAdded: 0,
		LastOkAt:  st.LastOkAt,
	}
	if !h.CrawlStatus.CompareAndSwap(st, start) {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	reqID := RequestIDFrom(r.Context())

	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		saved, err := h.RunCollect(context.Background(), cfg)

		now := time.Now().Format(time.RFC3339)
		next := h.CrawlStatus.Load().(crawl.Status)
		next.Running = false
		next.LastRunAt = now
		next.LastAdded = saved
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		h.CrawlStatus.Store(next)

		h.Hub.Publish(events.MakeEvent(reqID, events.TypeCrawlFinished, 1, map[string]any{"saved": saved}))
	}()

	writeJSON(w, map[string]any{"ok": true})
}
