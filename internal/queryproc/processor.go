// Package queryproc turns raw query text into a normalized, tokenized,
// intent-classified form ready for scoring.
package queryproc

import (
	"strings"

	"github.com/blevesearch/go-porterstemmer"

	"github.com/devref/docsearch/internal/tokenizer"
	"github.com/devref/docsearch/model"
)

// ProcessedQuery is the per-request normalized form of a search query.
// Tokens and Stems are always the same length, in the same order.
type ProcessedQuery struct {
	OriginalQuery string       `json:"originalQuery"`
	Tokens        []string     `json:"tokens"`
	Stems         []string     `json:"stems"`
	Intent        model.Intent `json:"intent"`
}

// Process tokenizes and stems the query and derives its intent.
// An empty or whitespace-only query yields empty token and stem slices;
// rejecting such queries is the transport layer's job.
func Process(query string) ProcessedQuery {
	tokens := tokenizer.Tokenize(query)

	stems := make([]string, len(tokens))
	for i, token := range tokens {
		stems[i] = porterstemmer.StemString(token)
	}

	return ProcessedQuery{
		OriginalQuery: query,
		Tokens:        tokens,
		Stems:         stems,
		Intent:        classifyIntent(query),
	}
}

// classifyIntent derives a coarse intent label from substring checks
// against the lower-cased full query (not the tokens). First match wins.
func classifyIntent(query string) model.Intent {
	lowerQuery := strings.ToLower(query)

	switch {
	case strings.Contains(lowerQuery, "how to") || strings.Contains(lowerQuery, "how do i"):
		return model.IntentHowTo
	case strings.Contains(lowerQuery, "what is") || strings.Contains(lowerQuery, "definition"):
		return model.IntentDefinition
	case strings.Contains(lowerQuery, "example") || strings.Contains(lowerQuery, "sample"):
		return model.IntentExample
	default:
		return model.IntentSearch
	}
}
