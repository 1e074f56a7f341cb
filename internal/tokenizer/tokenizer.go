package tokenizer

import (
	"regexp"
	"strings"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenize converts a string into a slice of lower-cased word tokens.
// It lowercases the string and splits by non-alphanumeric characters.
// The relevance score is normalized by the token count, so tokenization
// must stay deterministic.
func Tokenize(text string) []string {
	lowerText := strings.ToLower(text)

	split := nonAlphanumericRegex.Split(lowerText, -1)

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" { // Filter out empty strings
			tokens = append(tokens, s)
		}
	}
	return tokens
}
