// Package model defines the documentation corpus data types shared across
// the service: entries, embedded code examples, and ranked search results.
package model

// Intent is the coarse classification of what kind of answer a query seeks.
type Intent string

const (
	IntentHowTo      Intent = "how-to"
	IntentDefinition Intent = "definition"
	IntentExample    Intent = "example"
	IntentSearch     Intent = "search" // default when no other intent matches
)

// CodeExample is a runnable snippet embedded in a documentation entry.
type CodeExample struct {
	ID            string   `json:"id"`
	Code          string   `json:"code"`
	Language      string   `json:"language"`
	Description   string   `json:"description"`
	IsInteractive bool     `json:"isInteractive"`
	Dependencies  []string `json:"dependencies"`
}

// DocumentationEntry is a single corpus document. Entries are loaded once at
// startup and never mutated afterwards.
//
// CorpusIndex is the entry's position in corpus order, assigned exactly once
// at load time. The term-weighting model addresses per-document statistics
// through it, so it must match the order documents were added to the model.
type DocumentationEntry struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Path         string        `json:"path"`
	Source       string        `json:"source"`
	SourceURL    string        `json:"sourceUrl"`
	Type         string        `json:"type"`
	CodeExamples []CodeExample `json:"codeExamples"`
	CorpusIndex  int           `json:"-"`
}

// RankedResult is a documentation entry paired with a relevance score
// computed for one specific query. It is built fresh per request; the
// underlying corpus entry is never mutated.
type RankedResult struct {
	DocumentationEntry
	RelevanceScore float64 `json:"relevanceScore"`
}

// HighlightedExample is a code example with syntax-highlighted markup
// attached. Fallback reports that highlighting failed and HighlightedCode
// holds the original code unchanged.
type HighlightedExample struct {
	CodeExample
	HighlightedCode string `json:"highlightedCode"`
	Fallback        bool   `json:"fallback,omitempty"`
}

// CodeExampleResult is the payload returned for a code example lookup:
// the owning document plus one or more highlighted examples.
type CodeExampleResult struct {
	DocumentID    string               `json:"documentId"`
	DocumentTitle string               `json:"documentTitle"`
	CodeExamples  []HighlightedExample `json:"codeExamples"`
}
