package httpapi

import (
	"net/http"
	"strconv"

	"khidi-engine/internal/store"
)

type RecruitmentsHandler struct {
	DB *store.DB
}

// List returns the static hiring archive, year descending then position
// ascending. ?year= narrows to one year.
func (h RecruitmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	recs, err := h.DB.ListRecruitments(r.Context(), year)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_read_failed", err.Error())
		return
	}
	writeJSON(w, recs)
}

// Stats feeds the per-year metric cards.
func (h RecruitmentsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DB.RecruitmentStats(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_read_failed", err.Error())
		return
	}
	writeJSON(w, stats)
}
