package httpapi

import (
	"net/http"
	"strconv"

	"khidi-engine/internal/sample"
	"khidi-engine/internal/session"
	"khidi-engine/internal/store"
)

type BriefingsHandler struct {
	DB      *store.DB
	Session *session.Store
}

// List returns briefings newest-crawled-first, optionally filtered by
// category. An empty store falls back to the bundled sample dataset so the
// dashboard is never blank. Session-scoped analysis text is merged in at
// render time rather than read from the store.
func (h BriefingsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	briefings, err := h.DB.ListBriefings(r.Context(), category, limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_read_failed", err.Error())
		return
	}

	fallback := false
	if len(briefings) == 0 {
		// check whether the store is empty overall, not just this category
		all, err := h.DB.ListBriefings(r.Context(), store.CategoryAll, 1)
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, "store_read_failed", err.Error())
			return
		}
		if len(all) == 0 {
			briefings = sample.Filter(sample.Briefings(), category)
			fallback = true
		}
	}

	analyses := h.Session.Analyses()
	for i := range briefings {
		if text, ok := analyses[briefings[i].ID]; ok {
			briefings[i].Analysis = text
		}
	}

	writeJSON(w, map[string]any{
		"briefings": briefings,
		"sample":    fallback,
	})
}
