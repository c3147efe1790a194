package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptstage/scene-engine/pkg/resolver"
	"github.com/promptstage/scene-engine/pkg/scenescript"
	"github.com/promptstage/scene-engine/pkg/world"
)

func validScript() *scenescript.SceneScript {
	return &scenescript.SceneScript{
		SuccessLevel:   scenescript.FullSuccess,
		Narration:      "A quiet moment on stage.",
		Actions:        []scenescript.Action{},
		PromptFeedback: "Nice prompt!",
	}
}

func TestWorldsHandler_List(t *testing.T) {
	h := NewWorldsHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/v1/worlds", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var worlds []world.World
	require.NoError(t, json.NewDecoder(w.Body).Decode(&worlds))
	assert.Len(t, worlds, len(world.List()))
	assert.Equal(t, "skeleton-birthday", worlds[0].ID)
}

func TestWorldsHandler_Single(t *testing.T) {
	h := NewWorldsHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/v1/worlds/mage-kitchen", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var zone world.World
	require.NoError(t, json.NewDecoder(w.Body).Decode(&zone))
	assert.Equal(t, "mage-kitchen", zone.ID)
	assert.NotEmpty(t, zone.Characters)
}

func TestWorldsHandler_Unknown(t *testing.T) {
	h := NewWorldsHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/v1/worlds/atlantis", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorldsHandler_MethodNotAllowed(t *testing.T) {
	h := NewWorldsHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodDelete, "/v1/worlds", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := resolver.NewCache(logger)
	cache.Put("skeleton-birthday", "throw a party", validScript())
	h := NewHealthHandler(cache, "anthropic", logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp healthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "anthropic", resp.LLMProvider)
	assert.Equal(t, 1, resp.CacheEntries)
}
