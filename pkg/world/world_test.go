package world

import (
	"strings"
	"testing"

	"github.com/promptstage/scene-engine/pkg/scenescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	w, ok := Get("skeleton-birthday")
	require.True(t, ok)
	assert.Equal(t, "Skeleton's Birthday Bash", w.Label)
	assert.Contains(t, w.Characters, "skeleton_warrior")

	_, ok = Get("moon-base-omega")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	all := List()
	require.Len(t, all, len(worldOrder))

	// Stable, defined order.
	assert.Equal(t, "skeleton-birthday", all[0].ID)
	assert.Equal(t, "mage-kitchen", all[len(all)-1].ID)

	for _, w := range all {
		assert.NotEmpty(t, w.Label, "world %s", w.ID)
		assert.NotEmpty(t, w.Hook, "world %s", w.ID)
		assert.NotEmpty(t, w.Placeholder, "world %s", w.ID)
		assert.NotEmpty(t, w.Characters, "world %s", w.ID)
		assert.NotEmpty(t, w.Props, "world %s", w.ID)
		assert.NotEmpty(t, w.Animations, "world %s", w.ID)
		assert.NotEmpty(t, w.Effects, "world %s", w.ID)
	}
}

func TestSystemPrompt(t *testing.T) {
	w, ok := Get("knight-space")
	require.True(t, ok)

	prompt := w.SystemPrompt()

	assert.Contains(t, prompt, "CURRENT WORLD: Space Station Emergency")
	assert.Contains(t, prompt, w.Hook)
	assert.Contains(t, prompt, "RESPOND WITH ONLY THE JSON OBJECT")

	// Every roster entry is listed verbatim so the generator can only
	// reference real assets.
	for _, name := range w.Characters {
		assert.Contains(t, prompt, "- "+name+"\n")
	}
	for _, name := range w.Props {
		assert.Contains(t, prompt, "- "+name+"\n")
	}
	assert.Contains(t, prompt, "FULL_SUCCESS")
	assert.Contains(t, prompt, "FUNNY_FAIL")
}

func TestSystemPrompt_DiffersPerWorld(t *testing.T) {
	a, _ := Get("skeleton-birthday")
	b, _ := Get("mage-kitchen")
	assert.NotEqual(t, a.SystemPrompt(), b.SystemPrompt())
}

func TestFallbackScript_KnownWorld(t *testing.T) {
	script := FallbackScript("skeleton-pizza")
	require.NotNil(t, script)
	assert.Equal(t, "The restaurant is a mess and nobody knows what to cook!", script.Narration)
}

func TestFallbackScript_UnknownWorldUsesDefault(t *testing.T) {
	script := FallbackScript("no-such-world")
	require.NotNil(t, script)
	assert.Equal(t, FallbackScript(DefaultWorldID), script)
}

func TestFallbackScripts_CoverEveryWorldAndValidateStrictly(t *testing.T) {
	for _, w := range List() {
		script, ok := fallbackScripts[w.ID]
		require.True(t, ok, "world %s has no fallback script", w.ID)

		assert.Equal(t, scenescript.PartialSuccess, script.SuccessLevel, "world %s", w.ID)
		assert.NotEmpty(t, script.Narration, "world %s", w.ID)
		assert.NotEmpty(t, script.PromptFeedback, "world %s", w.ID)
		assert.NotEmpty(t, script.Actions, "world %s", w.ID)

		// The terminal tier must always pass the deep checks against its
		// own world's roster: a broken fallback breaks the never-error
		// guarantee.
		assert.NoError(t, scenescript.StrictValidate(script, w.Vocabulary()), "world %s", w.ID)
	}
}

func TestVocabulary(t *testing.T) {
	w, _ := Get("dungeon-concert")
	vocab := w.Vocabulary()
	assert.Equal(t, w.Characters, vocab.Actors)
	assert.Equal(t, w.Props, vocab.Props)
	assert.True(t, strings.HasPrefix(w.Emoji, "\U0001F5DD"))
}
