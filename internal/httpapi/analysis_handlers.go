package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"khidi-engine/internal/events"
	"khidi-engine/internal/sample"
	"khidi-engine/internal/session"
	"khidi-engine/internal/store"
)

type AnalysisHandler struct {
	DB      *store.DB
	Hub     *events.Hub
	Session *session.Store

	InBasket      func(ctx context.Context, apiKey, title, content string) string
	Forecast      func(ctx context.Context, apiKey string) string
	ResolveAPIKey func() string
}

// AnalyzeByPath handles POST /briefings/{id}/analyze: generates the
// in-basket report for one briefing and stores it in session state. Sample
// briefings are analyzable too, so the feature works before the first crawl.
func (h AnalysisHandler) AnalyzeByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/briefings/")
	idStr, action, ok := strings.Cut(rest, "/")
	if !ok || action != "analyze" {
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown briefing action")
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid briefing id")
		return
	}

	b, err := h.DB.GetBriefing(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		if sb, found := sample.ByID(id); found {
			b = sb
		} else {
			WriteError(w, r, http.StatusNotFound, "not_found", "briefing not found")
			return
		}
	} else if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_read_failed", err.Error())
		return
	}

	content := b.Content
	if content == "" {
		content = b.Title
	}

	text := h.InBasket(r.Context(), h.ResolveAPIKey(), b.Title, content)
	h.Session.SetAnalysis(b.ID, text)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeAnalysisReady, 1, map[string]any{"id": b.ID}))

	writeJSON(w, map[string]any{"id": b.ID, "analysis": text})
}

// RunForecast handles POST /forecast.
func (h AnalysisHandler) RunForecast(w http.ResponseWriter, r *http.Request) {
	text := h.Forecast(r.Context(), h.ResolveAPIKey())
	h.Session.SetForecast(text)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeAnalysisReady, 1, map[string]any{"forecast": true}))

	writeJSON(w, map[string]any{"forecast": text})
}

// LastForecast returns the forecast generated earlier in this session, if any.
func (h AnalysisHandler) LastForecast(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"forecast": h.Session.Forecast()})
}
