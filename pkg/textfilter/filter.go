// Package textfilter keeps player-visible text family friendly. The
// game's audience is ages 7-11: anything a player types is echoed back
// into narration and cached for other sessions, so rude words are
// swapped for playground-safe stand-ins before they go anywhere.
package textfilter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// replacements maps rude words to their kid-safe stand-ins.
var replacements = map[string]string{
	"fuck":    "fudge",
	"shit":    "shoot",
	"damn":    "dang",
	"hell":    "heck",
	"ass":     "butt",
	"crap":    "crud",
	"bitch":   "meanie",
	"bastard": "meanie",
	"piss":    "tick",
	"stupid":  "silly",
	"idiot":   "goofball",
	"dumb":    "goofy",
	"hate":    "dislike",
	"kill":    "bonk",
	"die":     "flop",
	"dead":    "napping",
}

// Filter replaces rude words with kid-safe alternatives, preserving the
// case pattern of the original word.
type Filter struct {
	patterns map[string]*regexp.Regexp
}

// New builds a filter with patterns pre-compiled for every known word.
func New() *Filter {
	f := &Filter{patterns: make(map[string]*regexp.Regexp, len(replacements))}
	for word := range replacements {
		f.patterns[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return f
}

// Clean returns the text with every rude word replaced.
func (f *Filter) Clean(text string) string {
	result := text
	for word, pattern := range f.patterns {
		replacement := replacements[word]
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			return matchCase(match, replacement)
		})
	}
	return result
}

// IsClean reports whether the text contains no known rude words.
func (f *Filter) IsClean(text string) bool {
	for _, pattern := range f.patterns {
		if pattern.MatchString(text) {
			return false
		}
	}
	return true
}

var titleCaser = cases.Title(language.English)

// matchCase shapes the replacement to the case pattern of the matched
// word: all-caps stays all-caps, Title stays Title, else lowercase.
func matchCase(original, replacement string) string {
	switch {
	case original == strings.ToUpper(original) && strings.ContainsFunc(original, unicode.IsLetter):
		return strings.ToUpper(replacement)
	case original == titleCaser.String(strings.ToLower(original)):
		return titleCaser.String(replacement)
	default:
		return strings.ToLower(replacement)
	}
}
