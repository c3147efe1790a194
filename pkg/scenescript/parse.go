package scenescript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingFields marks generator output that decoded as JSON but lacks
// the required scene script envelope.
var ErrMissingFields = errors.New("invalid scene script: missing required fields")

// SchemaError describes generator output that failed to parse or
// validate. It is always recoverable: the resolver demotes it to a
// fallback scene rather than surfacing it to the player.
type SchemaError struct {
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scene script %s: %v", e.Reason, e.Err)
	}
	return "scene script " + e.Reason
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Parse extracts a SceneScript from raw generator text. The text may be
// wrapped in markdown code fences (with or without a language tag) and
// padded with whitespace.
//
// This is deliberately a minimal envelope check: it requires
// success_level to be present and actions to be an array, and nothing
// deeper. Unknown and extra fields pass through untouched so newer
// generator output is never rejected here. StrictValidate is the deep
// check used by offline tooling.
func Parse(raw string) (*SceneScript, error) {
	text := stripFences(strings.TrimSpace(raw))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, &SchemaError{Reason: "parse failed", Err: err}
	}

	if _, ok := fields["success_level"]; !ok {
		return nil, &SchemaError{Reason: "rejected", Err: ErrMissingFields}
	}
	actions, ok := fields["actions"]
	if !ok || !isJSONArray(actions) {
		return nil, &SchemaError{Reason: "rejected", Err: ErrMissingFields}
	}

	var script SceneScript
	if err := json.Unmarshal([]byte(text), &script); err != nil {
		return nil, &SchemaError{Reason: "decode failed", Err: err}
	}
	return &script, nil
}

// stripFences removes a surrounding markdown code fence, tolerating an
// optional language tag on the opening fence.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line ("```" or "```json").
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		// One-line fence: the language tag has no newline to hide
		// behind ("```json{...}```"), so trim it off the front too.
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimLeft(strings.TrimSpace(s), "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}
