// Package services defines the interfaces and shared request/result types
// that connect the ranking engine to its callers.
package services

import (
	"github.com/devref/docsearch/model"
)

// SearchFilters narrows a search to specific corpus slices. Empty slices
// mean no filtering. Source values match case-insensitively; type values
// are canonical lowercase identifiers and match case-sensitively.
// DateRange is accepted for wire compatibility but not used by scoring.
type SearchFilters struct {
	Sources   []string `json:"sources,omitempty"`
	Types     []string `json:"types,omitempty"`
	DateRange string   `json:"dateRange,omitempty"`
}

// SearchResult is the outcome of one ranking pass: the filtered, sorted,
// thresholded results plus the intent derived from the query.
type SearchResult struct {
	Results []model.RankedResult
	Count   int
	Intent  model.Intent
}

// HighlightResult carries highlighted markup, or the original code
// unchanged when highlighting failed (Fallback true).
type HighlightResult struct {
	Code     string
	Fallback bool
}

// Searcher ranks the corpus against free-text queries.
type Searcher interface {
	Search(query string, filters SearchFilters) (SearchResult, error)
	Sources() []string
	Types() []string
}

// CodeExampleProvider looks up code examples by document or example id.
type CodeExampleProvider interface {
	CodeExamplesByID(id string) (*model.CodeExampleResult, error)
}

// Highlighter produces syntax-highlighted markup for a code snippet.
// Implementations must not fail: on any error they return the original
// code with Fallback set.
type Highlighter interface {
	Highlight(code, language string) HighlightResult
}

// SearchEngine combines everything the HTTP layer needs.
type SearchEngine interface {
	Searcher
	CodeExampleProvider
	Highlighter
}
