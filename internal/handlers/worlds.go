package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/promptstage/scene-engine/pkg/world"
)

// WorldsHandler serves the world catalog.
type WorldsHandler struct {
	logger *slog.Logger
}

func NewWorldsHandler(logger *slog.Logger) *WorldsHandler {
	return &WorldsHandler{logger: logger}
}

// ServeHTTP handles GET /v1/worlds and GET /v1/worlds/{id}.
func (h *WorldsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		writeJSONError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/worlds"), "/")
	if id == "" {
		if err := json.NewEncoder(w).Encode(world.List()); err != nil {
			h.logger.Error("Error encoding worlds list", "error", err)
		}
		return
	}

	zone, ok := world.Get(id)
	if !ok {
		writeJSONError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Unknown world: %s", id))
		return
	}
	if err := json.NewEncoder(w).Encode(zone); err != nil {
		h.logger.Error("Error encoding world", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		logger.Error("Error encoding error response", "error", err)
	}
}
