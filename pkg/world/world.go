// Package world defines the playable zones: each world carries its asset
// rosters, the hook shown to the player, and the system instruction used
// for live scene generation.
package world

import (
	"fmt"
	"strings"

	"github.com/promptstage/scene-engine/pkg/scenescript"
)

// World is one mini-game zone with its own character and prop roster.
type World struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Emoji       string   `json:"emoji"`
	Color       string   `json:"color"`
	Hook        string   `json:"hook"`
	Placeholder string   `json:"placeholder"`
	Characters  []string `json:"characters"`
	Props       []string `json:"props"`
	Animations  []string `json:"animations"`
	Effects     []string `json:"effects"`
	Sounds      []string `json:"sounds"`
}

// Vocabulary returns the world's closed asset roster for strict
// validation of generated scripts.
func (w *World) Vocabulary() *scenescript.Vocabulary {
	return &scenescript.Vocabulary{
		Actors:     w.Characters,
		Props:      w.Props,
		Animations: w.Animations,
		Effects:    w.Effects,
		Sounds:     w.Sounds,
	}
}

// Get looks up a world by id.
func Get(id string) (*World, bool) {
	w, ok := worlds[id]
	return w, ok
}

// List returns all worlds in their defined order.
func List() []*World {
	out := make([]*World, 0, len(worldOrder))
	for _, id := range worldOrder {
		out = append(out, worlds[id])
	}
	return out
}

// SystemPrompt builds the generation instruction for this world: the
// JSON contract, skill-detection rubric, grading rules, and the world's
// exact asset rosters. One parameterized template covers every zone.
func (w *World) SystemPrompt() string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are the game engine for a children's sandbox game (ages 7-11) that teaches prompt engineering through creative play.

CURRENT WORLD: %s
SCENARIO: %s

This is a SANDBOX — there are no right or wrong answers. Every input produces something.
- Vague prompts ("do stuff") produce funny, silly results
- Specific prompts produce impressive, detailed scenes
- The more detail the child gives, the cooler the result

EVALUATE the child's input and return ONLY a JSON object. No markdown, no explanation.

JSON FORMAT:
{
  "success_level": "FULL_SUCCESS" or "PARTIAL_SUCCESS" or "FUNNY_FAIL",
  "narration": "One fun sentence describing what happens (under 20 words)",
  "actions": [
    { "type": "spawn", "target": "character_or_prop", "position": "left" },
    { "type": "move", "target": "character_or_prop", "to": "center", "style": "arc" },
    { "type": "animate", "target": "character", "anim": "Cheering" },
    { "type": "react", "effect": "confetti-burst", "position": "center" }
  ],
  "prompt_feedback": "Encouraging feedback with one concrete tip to try next",
  "guide_hint": "A friendly suggestion for what to try next",
  "prompt_analysis": {
    "has_character": true,
    "has_action": true,
    "has_sequence": false,
    "has_detail": false,
    "has_multi_char": false,
    "has_environment": false
  }
}

SKILL DETECTION (for prompt_analysis):
- has_character: Did they name a specific character?
- has_action: Did they describe a specific action?
- has_sequence: Did they describe events in order? (first... then... finally...)
- has_detail: Did they add descriptive details?
- has_multi_char: Did they involve 2+ characters interacting?
- has_environment: Did they reference the setting or props in the world?

SUCCESS LEVEL MAPPING:
- FUNNY_FAIL (0-1 skills): Vague input. Something silly and unexpected happens. Make it FUNNY, never mean.
- PARTIAL_SUCCESS (2-3 skills): Decent input. The scene works but could be more detailed.
- FULL_SUCCESS (4+ skills): Specific input. An impressive, detailed scene with flair.

`, w.Label, w.Hook)

	writeRoster(&b, "CHARACTERS ON STAGE (use these exact names):", w.Characters)
	writeRoster(&b, "AVAILABLE PROPS (use these exact names):", w.Props)
	writeRoster(&b, "AVAILABLE ANIMATIONS (use these exact names):", w.Animations)
	writeRoster(&b, "AVAILABLE REACTIONS (use these exact names):", w.Effects)

	b.WriteString(`AVAILABLE POSITIONS:
- left, center, right, top, bottom, off-left, off-right, off-top

AVAILABLE MOVE STYLES:
- linear, arc, bounce, float, shake, spin-in, drop-in

RULES:
- Maximum 6 actions in the actions array
- ONLY use character names, prop names, animations, and reactions from the lists above
- NEVER invent new asset names
- narration must be fun, silly, and under 20 words
- For FUNNY_FAIL: make it silly and surprising, NEVER mean or scary
- prompt_feedback should be encouraging and give ONE specific tip
- guide_hint should suggest what kind of detail to add next
- prompt_analysis must accurately reflect what skills the child demonstrated
- RESPOND WITH ONLY THE JSON OBJECT. NO OTHER TEXT.`)

	return b.String()
}

func writeRoster(b *strings.Builder, heading string, names []string) {
	b.WriteString(heading)
	b.WriteByte('\n')
	for _, name := range names {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}
