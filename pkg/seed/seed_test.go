package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/promptstage/scene-engine/pkg/scenescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `{
  "skeleton-birthday": {
    "bring a giant cake": {
      "success_level": "FULL_SUCCESS",
      "narration": "The knight hauls in a cake bigger than the skeleton!",
      "actions": [
        {"type": "spawn", "target": "cake", "position": "center"},
        {"type": "react", "effect": "confetti-burst", "position": "center"}
      ],
      "prompt_feedback": "Great detail with GIANT!"
    },
    "Everyone dance!": {
      "success_level": "PARTIAL_SUCCESS",
      "narration": "The whole crew starts a wobbly bone dance.",
      "actions": [],
      "prompt_feedback": "Try naming who dances and how!"
    }
  }
}`

func TestRead(t *testing.T) {
	data, err := Read(strings.NewReader(sampleSeed))
	require.NoError(t, err)

	require.Contains(t, data, "skeleton-birthday")
	bucket := data["skeleton-birthday"]
	require.Len(t, bucket, 2)

	script := bucket["bring a giant cake"]
	require.NotNil(t, script)
	assert.Equal(t, scenescript.FullSuccess, script.SuccessLevel)
	assert.Len(t, script.Actions, 2)

	// Seed keys stay as authored, free text included.
	assert.Contains(t, bucket, "Everyone dance!")
}

func TestRead_InvalidJSON(t *testing.T) {
	_, err := Read(strings.NewReader("not json at all"))
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestWriteThenReadFile(t *testing.T) {
	data, err := Read(strings.NewReader(sampleSeed))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, WriteFile(path, data))

	reread, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, reread)
}

func TestReadPromptList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	content := `worlds:
  skeleton-birthday:
    - bring a giant cake
    - everyone dances around the table
  mage-kitchen:
    - the mage freezes the flying pot
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := ReadPromptList(path)
	require.NoError(t, err)
	assert.Len(t, list.Worlds, 2)
	assert.Equal(t, []string{"bring a giant cake", "everyone dances around the table"}, list.Worlds["skeleton-birthday"])
}

func TestReadPromptList_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("worlds: {}\n"), 0o644))

	_, err := ReadPromptList(path)
	assert.Error(t, err)
}
