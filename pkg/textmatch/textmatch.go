// Package textmatch provides text normalization and keyword-overlap
// scoring for matching free-text player prompts against cached entries.
package textmatch

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// stopWords are filler tokens that carry no matching signal. The set is
// fixed for a given build so that cached keys and queries extract stably.
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "an", "the", "and", "or", "but", "is", "are", "was", "were",
		"to", "for", "of", "with", "in", "on", "at", "by", "it", "its",
		"be", "do", "does", "did", "have", "has", "had", "will", "would",
		"can", "could", "should", "may", "might", "shall", "i", "you", "he",
		"she", "we", "they", "me", "him", "her", "us", "them", "my", "your",
		"his", "our", "their", "this", "that", "some", "any", "no", "not",
		"so", "if", "then", "than", "too", "very", "just", "about", "up",
		"out", "how", "what", "when", "where", "who", "which", "there",
		"here", "all", "each", "every", "both", "few", "more", "most",
		"make", "let", "get", "put", "take", "give", "go", "come", "want",
		"need", "like", "really", "please",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}

// Normalize lowercases the input, strips every rune that is not a word
// character or whitespace, and collapses whitespace runs to single spaces.
// Normalize is idempotent and total: any string in, including empty.
func Normalize(input string) string {
	s := strings.ToLower(input)
	s = nonWordPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Keywords normalizes the input, splits it on spaces, and drops
// single-character tokens and stop words. The result may be empty.
func Keywords(input string) []string {
	normalized := Normalize(input)
	if normalized == "" {
		return nil
	}

	var keywords []string
	for _, word := range strings.Split(normalized, " ") {
		if len(word) <= 1 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// Overlap scores how closely two free-text inputs match on shared
// keywords, returning a value in [0,1]. If either input yields no
// keywords the score is 0.
//
// The denominator is max(len(a keywords), len(b keywords)) rather than
// the union size: a short query fully contained in a much longer cached
// phrase scores low on purpose, trading recall for precision. The fuzzy
// cache threshold is tuned against this exact formula, so don't swap in
// true Jaccard.
func Overlap(inputA, inputB string) float64 {
	kwA := Keywords(inputA)
	kwB := Keywords(inputB)

	if len(kwA) == 0 || len(kwB) == 0 {
		return 0
	}

	setB := make(map[string]struct{}, len(kwB))
	for _, w := range kwB {
		setB[w] = struct{}{}
	}

	matches := 0
	for _, w := range kwA {
		if _, ok := setB[w]; ok {
			matches++
		}
	}

	denom := len(kwA)
	if len(kwB) > denom {
		denom = len(kwB)
	}
	return float64(matches) / float64(denom)
}
