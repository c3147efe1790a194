package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/promptstage/scene-engine/pkg/resolver"
	"github.com/promptstage/scene-engine/pkg/world"
)

// SceneRequest mirrors the API's resolve request body.
type SceneRequest struct {
	WorldID string `json:"world_id"`
	Input   string `json:"input"`
}

// SceneResponse mirrors the API's resolve response.
type SceneResponse struct {
	WorldID string `json:"world_id"`
	*resolver.ResolvedResponse
	Error string `json:"error,omitempty"`
}

func listWorlds(client *http.Client, baseURL string) ([]world.World, error) {
	resp, err := client.Get(baseURL + "/v1/worlds")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var worlds []world.World
	if err := json.Unmarshal(body, &worlds); err != nil {
		return nil, fmt.Errorf("failed to parse worlds response: %w", err)
	}
	return worlds, nil
}

func sendScene(client *http.Client, baseURL string, worldID string, input string) (*SceneResponse, error) {
	jsonData, err := json.Marshal(SceneRequest{WorldID: worldID, Input: input})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/scene",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("scene request failed: %s", errorResp.Error)
	}

	var sceneResp SceneResponse
	if err := json.Unmarshal(body, &sceneResp); err != nil {
		return nil, fmt.Errorf("failed to parse scene response: %w", err)
	}
	return &sceneResp, nil
}
