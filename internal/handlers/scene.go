package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/promptstage/scene-engine/internal/services"
	"github.com/promptstage/scene-engine/pkg/resolver"
	"github.com/promptstage/scene-engine/pkg/textfilter"
	"github.com/promptstage/scene-engine/pkg/world"
)

// SceneRequest is the resolve request body.
type SceneRequest struct {
	WorldID string `json:"world_id"`
	Input   string `json:"input"`
}

// SceneResponse wraps the resolved scene for the wire.
type SceneResponse struct {
	WorldID string `json:"world_id"`
	*resolver.ResolvedResponse
	Error string `json:"error,omitempty"`
}

// SceneHandler resolves player prompts into scene scripts.
type SceneHandler struct {
	resolver *resolver.Resolver
	limiter  services.RateLimiter
	filter   *textfilter.Filter
	logger   *slog.Logger
}

// NewSceneHandler creates a scene handler. limiter may be nil to
// disable rate limiting.
func NewSceneHandler(res *resolver.Resolver, limiter services.RateLimiter, logger *slog.Logger) *SceneHandler {
	return &SceneHandler{
		resolver: res,
		limiter:  limiter,
		filter:   textfilter.New(),
		logger:   logger,
	}
}

// ServeHTTP handles POST /v1/scene.
//
// Unknown world ids and blank input are caller errors rejected here, in
// front of the resolver: the resolver's contract assumes a known world
// and non-empty input, and once it runs it always produces a scene.
func (h *SceneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	if h.limiter != nil {
		decision := h.limiter.Allow(r.Context(), clientKey(r))
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(decision.RetryAfter.Seconds())+1))
			h.writeError(w, http.StatusTooManyRequests, "Too many scenes requested. Take a breath and try again!")
			return
		}
	}

	var request SceneRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("Invalid scene request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body. Expected JSON with 'world_id' and 'input' fields.")
		return
	}

	zone, ok := world.Get(request.WorldID)
	if !ok {
		h.logger.Warn("Unknown world requested", "world_id", request.WorldID)
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("Unknown world: %s", request.WorldID))
		return
	}

	input := strings.TrimSpace(request.Input)
	if input == "" {
		h.writeError(w, http.StatusBadRequest, "Input cannot be empty.")
		return
	}
	input = h.filter.Clean(input)

	resolved := h.resolver.Resolve(r.Context(), zone.ID, zone.SystemPrompt(), input)

	// The generator is instructed to stay kid-friendly, but its output
	// is filtered again before it reaches a child's screen. Cache and
	// fallback scripts are shared across requests, so the filter writes
	// to a copy, never through the resolved pointer.
	if s := resolved.Script; s != nil {
		filtered := *s
		filtered.Narration = h.filter.Clean(filtered.Narration)
		filtered.PromptFeedback = h.filter.Clean(filtered.PromptFeedback)
		filtered.GuideHint = h.filter.Clean(filtered.GuideHint)
		resolved.Script = &filtered
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SceneResponse{
		WorldID:          zone.ID,
		ResolvedResponse: resolved,
	}); err != nil {
		h.logger.Error("Error encoding scene response", "error", err)
	}
}

func (h *SceneHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(SceneResponse{Error: msg}); err != nil {
		h.logger.Error("Error encoding error response", "error", err)
	}
}

// clientKey identifies the caller for rate limiting: the remote IP
// without the ephemeral port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
