// Package scenescript defines the structured scene output contract
// produced by the generator and consumed by the stage renderer: a graded
// outcome, one line of narration, and an ordered list of stage actions.
package scenescript

import (
	"encoding/json"
)

// SuccessLevel grades how well the player's prompt worked.
type SuccessLevel string

const (
	FullSuccess    SuccessLevel = "FULL_SUCCESS"
	PartialSuccess SuccessLevel = "PARTIAL_SUCCESS"
	FunnyFail      SuccessLevel = "FUNNY_FAIL"
)

// IsValid reports whether the level is one of the three known grades.
func (s SuccessLevel) IsValid() bool {
	switch s {
	case FullSuccess, PartialSuccess, FunnyFail:
		return true
	}
	return false
}

// ActionType discriminates the stage action shapes.
type ActionType string

const (
	ActionSpawn   ActionType = "spawn"
	ActionMove    ActionType = "move"
	ActionAnimate ActionType = "animate"
	ActionReact   ActionType = "react"
	ActionEmote   ActionType = "emote"
	ActionSfx     ActionType = "sfx"
	ActionWait    ActionType = "wait"
	ActionRemove  ActionType = "remove"
)

// Position is a stage placement for spawn/move/react actions.
type Position string

const (
	PosLeft     Position = "left"
	PosCenter   Position = "center"
	PosRight    Position = "right"
	PosTop      Position = "top"
	PosBottom   Position = "bottom"
	PosOffLeft  Position = "off-left"
	PosOffRight Position = "off-right"
	PosOffTop   Position = "off-top"
)

// IsValid reports whether the position is in the closed stage vocabulary.
func (p Position) IsValid() bool {
	switch p {
	case PosLeft, PosCenter, PosRight, PosTop, PosBottom, PosOffLeft, PosOffRight, PosOffTop:
		return true
	}
	return false
}

// MoveStyle selects the motion curve for move actions.
type MoveStyle string

const (
	StyleLinear MoveStyle = "linear"
	StyleArc    MoveStyle = "arc"
	StyleBounce MoveStyle = "bounce"
	StyleFloat  MoveStyle = "float"
	StyleShake  MoveStyle = "shake"
	StyleSpinIn MoveStyle = "spin-in"
	StyleDropIn MoveStyle = "drop-in"
)

// IsValid reports whether the style is in the closed move-style vocabulary.
func (m MoveStyle) IsValid() bool {
	switch m {
	case StyleLinear, StyleArc, StyleBounce, StyleFloat, StyleShake, StyleSpinIn, StyleDropIn:
		return true
	}
	return false
}

// Action is one stage instruction, discriminated by Type. Which of the
// remaining fields apply depends on the type; StrictValidate enforces the
// per-type shapes. Fields the renderer doesn't know yet survive a decode/
// encode round trip in Extra.
type Action struct {
	Type       ActionType `json:"type"`
	Target     string     `json:"target,omitempty"`
	Position   Position   `json:"position,omitempty"`
	To         Position   `json:"to,omitempty"`
	Style      MoveStyle  `json:"style,omitempty"`
	Anim       string     `json:"anim,omitempty"`
	Effect     string     `json:"effect,omitempty"`
	Emoji      string     `json:"emoji,omitempty"`
	Text       string     `json:"text,omitempty"`
	Sound      string     `json:"sound,omitempty"`
	Volume     *float64   `json:"volume,omitempty"`
	DelayMs    *int       `json:"delay_ms,omitempty"`
	DurationMs *int       `json:"duration_ms,omitempty"`

	// Extra holds unrecognized fields so forward-compatible generator
	// output is preserved, not silently dropped.
	Extra map[string]json.RawMessage `json:"-"`
}

// PromptAnalysis records which prompting skills the player demonstrated.
type PromptAnalysis struct {
	HasCharacter   bool `json:"has_character"`
	HasAction      bool `json:"has_action"`
	HasSequence    bool `json:"has_sequence"`
	HasDetail      bool `json:"has_detail"`
	HasMultiChar   bool `json:"has_multi_char"`
	HasEnvironment bool `json:"has_environment"`
}

// SceneScript is the unit of game output: what the narrator says, what
// plays out on stage, and the coaching shown to the player.
type SceneScript struct {
	SuccessLevel    SuccessLevel    `json:"success_level"`
	Narration       string          `json:"narration"`
	Actions         []Action        `json:"actions"`
	PromptFeedback  string          `json:"prompt_feedback"`
	MissingElements []string        `json:"missing_elements,omitempty"`
	GuideHint       string          `json:"guide_hint,omitempty"`
	PromptAnalysis  *PromptAnalysis `json:"prompt_analysis,omitempty"`

	// Extra holds unrecognized top-level fields for pass-through.
	Extra map[string]json.RawMessage `json:"-"`
}

var scriptKnownFields = []string{
	"success_level", "narration", "actions", "prompt_feedback",
	"missing_elements", "guide_hint", "prompt_analysis",
}

var actionKnownFields = []string{
	"type", "target", "position", "to", "style", "anim", "effect",
	"emoji", "text", "sound", "volume", "delay_ms", "duration_ms",
}

type scriptAlias SceneScript

// UnmarshalJSON decodes the known fields and stashes everything else in
// Extra so unknown generator fields round-trip intact.
func (s *SceneScript) UnmarshalJSON(data []byte) error {
	var alias scriptAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	extra, err := collectExtra(data, scriptKnownFields)
	if err != nil {
		return err
	}
	alias.Extra = extra

	*s = SceneScript(alias)
	return nil
}

// MarshalJSON re-emits known fields plus any preserved extras.
func (s SceneScript) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(scriptAlias(s), s.Extra)
}

type actionAlias Action

func (a *Action) UnmarshalJSON(data []byte) error {
	var alias actionAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	extra, err := collectExtra(data, actionKnownFields)
	if err != nil {
		return err
	}
	alias.Extra = extra

	*a = Action(alias)
	return nil
}

func (a Action) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(actionAlias(a), a.Extra)
}

// collectExtra returns the raw fields of a JSON object that are not in
// the known list, or nil if there are none.
func collectExtra(data []byte, known []string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(fields, k)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}

// marshalWithExtra serializes the alias value, then splices preserved
// extra fields back into the object.
func marshalWithExtra(alias any, extra map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(alias)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}
