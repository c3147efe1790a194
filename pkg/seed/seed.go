// Package seed reads the data files that feed the response cache: the
// JSON seed of pre-generated scenes loaded at startup, and the YAML
// prompt lists the seed generator works from.
package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/promptstage/scene-engine/pkg/scenescript"
)

// Data is the bulk seed payload: world id to free-text player input to
// pre-generated scene. Input keys are free text as originally typed;
// they are not required to be normalized.
type Data map[string]map[string]*scenescript.SceneScript

// Read decodes a seed payload from r.
func Read(r io.Reader) (Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return data, nil
}

// ReadFile decodes a seed payload from a JSON file.
func ReadFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return data, nil
}

// WriteFile serializes a seed payload to a JSON file, indented so the
// output diffs cleanly in version control.
func WriteFile(path string, data Data) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal seed data: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	return nil
}

// PromptList is the seed generator's work list: candidate player inputs
// per world, authored in YAML.
type PromptList struct {
	Worlds map[string][]string `yaml:"worlds"`
}

// ReadPromptList decodes a prompt list from a YAML file.
func ReadPromptList(path string) (*PromptList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt list: %w", err)
	}

	var list PromptList
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("prompt list %s: %w", path, err)
	}
	if len(list.Worlds) == 0 {
		return nil, fmt.Errorf("prompt list %s has no worlds", path)
	}
	return &list, nil
}
