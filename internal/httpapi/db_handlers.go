package httpapi

import (
	"net"
	"net/http"

	"khidi-engine/internal/events"
	"khidi-engine/internal/session"
	"khidi-engine/internal/store"
)

type DBHandler struct {
	DB       *store.DB
	Hub      *events.Hub
	Session  *session.Store
	CacheDir string
}

// Reset wipes the store file and the PDF cache, reinitializes schema and the
// recruitment seed, and drops session display state.
func (h DBHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.Reset(r.Context(), h.CacheDir); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reset_failed", err.Error())
		return
	}
	h.Session.Clear()

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeStoreReset, 1, nil))

	writeJSON(w, map[string]any{"ok": true})
}

func (h DBHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host != "127.0.0.1" && host != "::1" && host != "localhost" {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := h.DB.Checkpoint(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
