// Package match derives the candidate-match relation between found and lost
// items from textual keyword overlap.
package match

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinTokenLength keeps only words longer than three characters, which
// drops most articles and prepositions without a stop-word list.
const DefaultMinTokenLength = 4

// Keywords extracts the set of comparison tokens from a description: the
// lowercased, whitespace-delimited words of at least minLen characters. The
// length is counted in runes, not bytes, so accented words are filtered the
// same as ASCII ones. There is no punctuation stripping and no stemming;
// comparison is literal token equality. Deterministic and side-effect free.
func Keywords(description string, minLen int) map[string]struct{} {
	if minLen < 1 {
		minLen = 1
	}
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(description) {
		if utf8.RuneCountInString(word) < minLen {
			continue
		}
		tokens[strings.ToLower(word)] = struct{}{}
	}
	return tokens
}
