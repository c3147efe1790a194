package textfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Clean(t *testing.T) {
	f := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase word",
			input:    "the stupid robot fell over",
			expected: "the silly robot fell over",
		},
		{
			name:     "title case preserved",
			input:    "Stupid robot!",
			expected: "Silly robot!",
		},
		{
			name:     "all caps preserved",
			input:    "that is so DUMB",
			expected: "that is so GOOFY",
		},
		{
			name:     "multiple words",
			input:    "kill the idiot dragon",
			expected: "bonk the goofball dragon",
		},
		{
			name:     "word boundaries respected",
			input:    "the classic assassin passes",
			expected: "the classic assassin passes",
		},
		{
			name:     "clean text unchanged",
			input:    "the knight bakes a giant cake",
			expected: "the knight bakes a giant cake",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Clean(tt.input))
		})
	}
}

func TestFilter_IsClean(t *testing.T) {
	f := New()

	assert.True(t, f.IsClean("the knight bakes a giant cake"))
	assert.True(t, f.IsClean(""))
	assert.False(t, f.IsClean("this game is stupid"))
	assert.False(t, f.IsClean("STUPID game"))
}

func TestFilter_CleanedTextIsClean(t *testing.T) {
	f := New()
	dirty := "the stupid idiot robot should die"
	assert.True(t, f.IsClean(f.Clean(dirty)))
}
