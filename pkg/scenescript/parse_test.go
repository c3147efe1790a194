package scenescript

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validScriptJSON builds a minimal valid scene script and returns its
// serialized form.
func validScriptJSON(t *testing.T, mutate func(map[string]any)) string {
	t.Helper()

	obj := map[string]any{
		"success_level": "FULL_SUCCESS",
		"narration":     "The monster ate the giant cake!",
		"actions": []map[string]any{
			{"type": "spawn", "target": "cake", "position": "center"},
			{"type": "animate", "target": "monster", "anim": "Cheering"},
			{"type": "react", "effect": "confetti-burst", "position": "center"},
		},
		"prompt_feedback": "Great job specifying the cake size!",
	}
	if mutate != nil {
		mutate(obj)
	}

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	return string(data)
}

func TestParse_WellFormed(t *testing.T) {
	script, err := Parse(validScriptJSON(t, nil))
	require.NoError(t, err)

	assert.Equal(t, FullSuccess, script.SuccessLevel)
	assert.Equal(t, "The monster ate the giant cake!", script.Narration)
	assert.Equal(t, "Great job specifying the cake size!", script.PromptFeedback)
	require.Len(t, script.Actions, 3)
	assert.Equal(t, ActionSpawn, script.Actions[0].Type)
	assert.Equal(t, "cake", script.Actions[0].Target)
	assert.Equal(t, PosCenter, script.Actions[0].Position)
	assert.Equal(t, "Cheering", script.Actions[1].Anim)
	assert.Equal(t, "confetti-burst", script.Actions[2].Effect)
}

func TestParse_AllSuccessLevels(t *testing.T) {
	for _, level := range []SuccessLevel{FullSuccess, PartialSuccess, FunnyFail} {
		script, err := Parse(validScriptJSON(t, func(obj map[string]any) {
			obj["success_level"] = string(level)
		}))
		require.NoError(t, err)
		assert.Equal(t, level, script.SuccessLevel)
	}
}

func TestParse_StripsFences(t *testing.T) {
	raw := validScriptJSON(t, nil)

	tests := []struct {
		name    string
		wrapped string
	}{
		{"json language tag", "```json\n" + raw + "\n```"},
		{"no language tag", "```\n" + raw + "\n```"},
		{"fences plus padding", "  \n\n```json\n" + raw + "\n```\n\n  "},
		{"one-line fence", "```" + raw + "```"},
		{"one-line fence with tag", "```json" + raw + "```"},
		{"one-line fence with spaced tag", "``` json " + raw + " ```"},
	}

	want, err := Parse(raw)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.wrapped)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	raw := validScriptJSON(t, nil)
	script, err := Parse("   \n\n  " + raw + "  \n\n   ")
	require.NoError(t, err)
	assert.Equal(t, FullSuccess, script.SuccessLevel)
}

func TestParse_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing success_level", func(obj map[string]any) { delete(obj, "success_level") }},
		{"missing actions", func(obj map[string]any) { delete(obj, "actions") }},
		{"actions is a string", func(obj map[string]any) { obj["actions"] = "foo" }},
		{"actions is an object", func(obj map[string]any) { obj["actions"] = map[string]any{} }},
		{"actions is a number", func(obj map[string]any) { obj["actions"] = 7 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(validScriptJSON(t, tt.mutate))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingFields)

			var schemaErr *SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	inputs := []string{
		"this is not json",
		"",
		"   \n\t  ",
		`{"success_level": "FULL_SUCCESS", "actions": [}`,
		`{"truncated": `,
		`[1, 2, 3]`,
	}
	for _, input := range inputs {
		_, err := Parse(input)
		require.Error(t, err, "input %q must fail", input)
		assert.NotErrorIs(t, err, ErrMissingFields)

		var schemaErr *SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	}
}

func TestParse_UnknownFieldsPassThrough(t *testing.T) {
	script, err := Parse(validScriptJSON(t, func(obj map[string]any) {
		obj["bonus_field"] = "surprise"
		obj["score"] = 42
	}))
	require.NoError(t, err)

	require.Contains(t, script.Extra, "bonus_field")
	require.Contains(t, script.Extra, "score")

	// The extras survive a re-serialize, for cache and seed round trips.
	data, err := json.Marshal(script)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "surprise", out["bonus_field"])
	assert.Equal(t, float64(42), out["score"])
	assert.Equal(t, "FULL_SUCCESS", out["success_level"])
}

func TestParse_ExtensionFields(t *testing.T) {
	script, err := Parse(validScriptJSON(t, func(obj map[string]any) {
		obj["guide_hint"] = "Try naming a character!"
		obj["missing_elements"] = []string{"character", "action"}
		obj["prompt_analysis"] = map[string]bool{"has_character": true}
	}))
	require.NoError(t, err)

	assert.Equal(t, "Try naming a character!", script.GuideHint)
	assert.Equal(t, []string{"character", "action"}, script.MissingElements)
	require.NotNil(t, script.PromptAnalysis)
	assert.True(t, script.PromptAnalysis.HasCharacter)
	assert.False(t, script.PromptAnalysis.HasAction)
}

func TestParse_EmptyActionsArray(t *testing.T) {
	script, err := Parse(validScriptJSON(t, func(obj map[string]any) {
		obj["actions"] = []any{}
	}))
	require.NoError(t, err)
	assert.Empty(t, script.Actions)
}

func TestParse_UnknownActionShapePassesEnvelope(t *testing.T) {
	// A future action kind must not be rejected by the runtime parser.
	script, err := Parse(validScriptJSON(t, func(obj map[string]any) {
		obj["actions"] = []map[string]any{
			{"type": "teleport", "target": "monster", "warp_speed": 9},
		}
	}))
	require.NoError(t, err)
	require.Len(t, script.Actions, 1)
	assert.Equal(t, ActionType("teleport"), script.Actions[0].Type)
	assert.Contains(t, script.Actions[0].Extra, "warp_speed")
}

func TestActionRoundTrip(t *testing.T) {
	delay := 250
	duration := 600
	volume := 0.5
	action := Action{
		Type:       ActionSfx,
		Sound:      "success",
		Volume:     &volume,
		DelayMs:    &delay,
		DurationMs: &duration,
	}

	data, err := json.Marshal(action)
	require.NoError(t, err)

	var decoded Action
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, action, decoded)
}
