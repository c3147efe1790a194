package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/promptstage/scene-engine/pkg/resolver"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	cache    *resolver.Cache
	provider string
	logger   *slog.Logger
}

func NewHealthHandler(cache *resolver.Cache, provider string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{cache: cache, provider: provider, logger: logger}
}

type healthResponse struct {
	Status       string `json:"status"`
	LLMProvider  string `json:"llm_provider"`
	CacheEntries int    `json:"cache_entries"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:      "ok",
		LLMProvider: h.provider,
	}
	if h.cache != nil {
		resp.CacheEntries = h.cache.Len()
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Error encoding health response", "error", err)
	}
}
