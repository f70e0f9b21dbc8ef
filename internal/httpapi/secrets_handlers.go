package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"

	"khidi-engine/internal/config"
	"khidi-engine/internal/secrets"
	"khidi-engine/internal/session"
)

type SecretsHandler struct {
	CfgVal  *atomic.Value // config.Config
	Session *session.Store
}

type setGeminiKeyRequest struct {
	Key string `json:"key"`
	// Persist writes the key to the OS keychain as well; otherwise it lives
	// only in this session's memory.
	Persist bool `json:"persist"`
}

func (h SecretsHandler) SetGeminiKey(w http.ResponseWriter, r *http.Request) {
	var req setGeminiKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		WriteError(w, r, http.StatusBadRequest, "empty_key", "API key is empty")
		return
	}

	h.Session.SetAPIKey(req.Key)

	if req.Persist {
		cfg := h.CfgVal.Load().(config.Config)
		if err := secrets.SetGeminiKey(cfg.Analysis.KeyringAccount, req.Key); err != nil {
			WriteError(w, r, http.StatusInternalServerError, "keyring_failed", err.Error())
			return
		}
	}

	writeJSON(w, map[string]any{"ok": true, "persisted": req.Persist})
}
