package scenescript

import (
	"fmt"
	"strings"
)

// Vocabulary is the closed asset roster for one world. A nil Vocabulary
// skips roster membership checks but still enforces shapes.
type Vocabulary struct {
	Actors     []string
	Props      []string
	Animations []string
	Effects    []string
	Sounds     []string
}

func (v *Vocabulary) hasActor(name string) bool {
	return contains(v.Actors, name)
}

func (v *Vocabulary) hasTarget(name string) bool {
	return contains(v.Actors, name) || contains(v.Props, name)
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

// StrictValidate runs the deep per-action shape checks that the runtime
// parser intentionally skips. It is used by offline tooling (seed
// generation, file validation) where rejecting a bad script is cheap.
// Everything Parse accepts with a well-formed body passes here too;
// StrictValidate only adds depth, never loosens the envelope.
func StrictValidate(script *SceneScript, vocab *Vocabulary) error {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if !script.SuccessLevel.IsValid() {
		report("success_level %q is not one of FULL_SUCCESS, PARTIAL_SUCCESS, FUNNY_FAIL", script.SuccessLevel)
	}
	if strings.TrimSpace(script.Narration) == "" {
		report("narration must be a non-empty string")
	}
	if strings.TrimSpace(script.PromptFeedback) == "" {
		report("prompt_feedback must be a non-empty string")
	}

	for i, action := range script.Actions {
		for _, p := range validateAction(action, vocab) {
			report("actions[%d]: %s", i, p)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("strict validation failed:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// validateAction checks one action's shape against its type. The switch
// is exhaustive over the action vocabulary; a new action kind must be
// handled here before the tooling will accept it.
func validateAction(a Action, vocab *Vocabulary) []string {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	checkTarget := func(actorOnly bool) {
		if a.Target == "" {
			report("%s requires a target", a.Type)
			return
		}
		if vocab == nil {
			return
		}
		if actorOnly && !vocab.hasActor(a.Target) {
			report("target %q is not a known character", a.Target)
		} else if !actorOnly && !vocab.hasTarget(a.Target) {
			report("target %q is not a known character or prop", a.Target)
		}
	}

	switch a.Type {
	case ActionSpawn:
		checkTarget(false)
		if !a.Position.IsValid() {
			report("spawn position %q is not a valid position", a.Position)
		}
	case ActionMove:
		checkTarget(false)
		if !a.To.IsValid() {
			report("move destination %q is not a valid position", a.To)
		}
		if a.Style != "" && !a.Style.IsValid() {
			report("move style %q is not a valid style", a.Style)
		}
	case ActionAnimate:
		checkTarget(true)
		if a.Anim == "" {
			report("animate requires an anim name")
		} else if vocab != nil && len(vocab.Animations) > 0 && !contains(vocab.Animations, a.Anim) {
			report("anim %q is not a known animation", a.Anim)
		}
	case ActionReact:
		if a.Effect == "" {
			report("react requires an effect")
		} else if vocab != nil && len(vocab.Effects) > 0 && !contains(vocab.Effects, a.Effect) {
			report("effect %q is not a known reaction", a.Effect)
		}
		if !a.Position.IsValid() {
			report("react position %q is not a valid position", a.Position)
		}
	case ActionEmote:
		checkTarget(true)
		if a.Emoji == "" && a.Text == "" {
			report("emote requires an emoji or text")
		}
	case ActionSfx:
		if a.Sound == "" {
			report("sfx requires a sound")
		} else if vocab != nil && len(vocab.Sounds) > 0 && !contains(vocab.Sounds, a.Sound) {
			report("sound %q is not a known sound", a.Sound)
		}
	case ActionWait:
		if a.DurationMs == nil || *a.DurationMs < 0 {
			report("wait requires a non-negative duration_ms")
		}
	case ActionRemove:
		checkTarget(false)
	default:
		report("unknown action type %q", a.Type)
	}

	if a.DelayMs != nil && *a.DelayMs < 0 {
		report("delay_ms must be non-negative")
	}
	if a.DurationMs != nil && *a.DurationMs < 0 && a.Type != ActionWait {
		report("duration_ms must be non-negative")
	}

	return problems
}
