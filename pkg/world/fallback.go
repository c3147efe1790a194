package world

import (
	"github.com/promptstage/scene-engine/pkg/scenescript"
)

// DefaultWorldID is the fallback bucket used when a world has no entry
// in the fallback table.
const DefaultWorldID = "skeleton-birthday"

func ms(v int) *int { return &v }

func noSkills() *scenescript.PromptAnalysis {
	return &scenescript.PromptAnalysis{}
}

// FallbackScript returns the hand-authored scene for a world, or the
// default world's scene when the id has no entry. These scripts are the
// terminal tier of the resolver: they guarantee the player always sees a
// scene, never an error.
func FallbackScript(worldID string) *scenescript.SceneScript {
	if script, ok := fallbackScripts[worldID]; ok {
		return script
	}
	return fallbackScripts[DefaultWorldID]
}

var fallbackScripts = map[string]*scenescript.SceneScript{
	"skeleton-birthday": {
		SuccessLevel: scenescript.PartialSuccess,
		Narration:    "The skeleton sets up a table but forgot to invite anyone!",
		Actions: []scenescript.Action{
			{Type: scenescript.ActionSpawn, Target: "skeleton_warrior", Position: scenescript.PosCenter},
			{Type: scenescript.ActionSpawn, Target: "table_long", Position: scenescript.PosLeft},
			{Type: scenescript.ActionAnimate, Target: "skeleton_warrior", Anim: "Idle_A", DurationMs: ms(600)},
			{Type: scenescript.ActionReact, Effect: "question-marks", Position: scenescript.PosCenter},
		},
		PromptFeedback: "Nice start! Try describing WHO comes to the party and what decorations you'd put in the dungeon.",
		GuideHint:      `Try naming a character like "the knight" and tell me what they should do!`,
		PromptAnalysis: noSkills(),
	},

	"knight-space": {
		SuccessLevel: scenescript.PartialSuccess,
		Narration:    "The robots float around the space station, bumping into everything!",
		Actions: []scenescript.Action{
			{Type: scenescript.ActionSpawn, Target: "robot", Position: scenescript.PosLeft},
			{Type: scenescript.ActionSpawn, Target: "space_ranger", Position: scenescript.PosRight},
			{Type: scenescript.ActionMove, Target: "robot", To: scenescript.PosCenter, Style: scenescript.StyleBounce},
			{Type: scenescript.ActionReact, Effect: "stars-spin", Position: scenescript.PosCenter},
		},
		PromptFeedback: "Good try! Think about how to fix the space station and who might help.",
		GuideHint:      "Try telling the space ranger or engineer what to repair and how!",
		PromptAnalysis: noSkills(),
	},

	"barbarian-school": {
		SuccessLevel: scenescript.PartialSuccess,
		Narration:    "The monsters arrive at the playground but just stand there looking confused!",
		Actions: []scenescript.Action{
			{Type: scenescript.ActionSpawn, Target: "barbarian", Position: scenescript.PosLeft},
			{Type: scenescript.ActionSpawn, Target: "clown", Position: scenescript.PosRight},
			{Type: scenescript.ActionAnimate, Target: "barbarian", Anim: "Idle_A", DurationMs: ms(600)},
			{Type: scenescript.ActionReact, Effect: "question-marks", Position: scenescript.PosCenter},
		},
		PromptFeedback: "The playground is waiting! Tell the monsters what to play.",
		GuideHint:      `Try saying something like "the barbarian goes down the slide while the clown juggles"!`,
		PromptAnalysis: noSkills(),
	},

	"skeleton-pizza": {
		SuccessLevel: scenescript.PartialSuccess,
		Narration:    "The restaurant is a mess and nobody knows what to cook!",
		Actions: []scenescript.Action{
			{Type: scenescript.ActionSpawn, Target: "skeleton_warrior", Position: scenescript.PosLeft},
			{Type: scenescript.ActionSpawn, Target: "pizza", Position: scenescript.PosCenter},
			{Type: scenescript.ActionAnimate, Target: "skeleton_warrior", Anim: "PickUp", DurationMs: ms(600)},
			{Type: scenescript.ActionReact, Effect: "fire-sneeze", Position: scenescript.PosCenter},
		},
		PromptFeedback: "The kitchen needs a chef! Who cooks what?",
		GuideHint:      "Try describing who makes the pizza and what toppings they put on it!",
		PromptAnalysis: noSkills(),
	},

	"adventurers-picnic": {
		SuccessLevel: scenescript.PartialSuccess,
		Narration:    "The adventurers found the clearing but something magical just fizzled out!",
		Actions: []scenescript.Action{
			{Type: scenescript.ActionSpawn, Target: "ranger", Position: scenescript.PosLeft},
			{Type: scenescript.ActionSpawn, Target: "druid", Position: scenescript.PosRight},
			{Type: scenescript.ActionReact, Effect: "sparkle-magic", Position: scenescript.PosCenter},
		},
		PromptFeedback: "The forest is full of mysteries! What magical thing happens?",
		GuideHint:      "Try describing what the adventurers discover and how they react to it!",
		PromptAnalysis: noSkills(),
	},

	"dungeon-concert": {
		SuccessLevel: scenescript.PartialSuccess,
		Narration:    "The dungeon door creaks open but nobody has a plan yet!",
		Actions: []scenescript.Action{
			{Type: scenescript.ActionSpawn, Target: "knight", Position: scenescript.PosLeft},
			{Type: scenescript.ActionSpawn, Target: "rogue", Position: scenescript.PosRight},
			{Type: scenescript.ActionSpawn, Target: "chest", Position: scenescript.PosCenter},
			{Type: scenescript.ActionReact, Effect: "question-marks", Position: scenescript.PosCenter},
		},
		PromptFeedback: "You need an escape plan! What do you do first?",
		GuideHint:      "Try telling the rogue to pick the lock or the mage to cast a spell!",
		PromptAnalysis: noSkills(),
	},

	"mage-kitchen": {
		SuccessLevel: scenescript.PartialSuccess,
		Narration:    "The mage zaps the stove but the pot starts flying across the room!",
		Actions: []scenescript.Action{
			{Type: scenescript.ActionSpawn, Target: "mage", Position: scenescript.PosLeft},
			{Type: scenescript.ActionSpawn, Target: "pot", Position: scenescript.PosRight},
			{Type: scenescript.ActionAnimate, Target: "mage", Anim: "Interact", DurationMs: ms(600)},
			{Type: scenescript.ActionReact, Effect: "sparkle-magic", Position: scenescript.PosRight},
		},
		PromptFeedback: "The kitchen is alive! How does the mage tame it?",
		GuideHint:      "Try describing a specific spell the mage uses and what happens to each kitchen item!",
		PromptAnalysis: noSkills(),
	},
}
