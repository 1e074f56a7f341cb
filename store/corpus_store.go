// Package store holds the documentation corpus in memory. The corpus is
// loaded exactly once and is immutable afterwards, so it can be read
// concurrently without locking.
package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/devref/docsearch/model"
)

// defaultCorpus is the built-in demo corpus, used when no corpus file is
// configured.
//
//go:embed corpus.json
var defaultCorpus []byte

// CorpusStore is an ordered, immutable collection of documentation entries.
type CorpusStore struct {
	entries []model.DocumentationEntry
	byID    map[string]*model.DocumentationEntry
	sources []string // distinct, first-occurrence order
	types   []string // distinct, first-occurrence order
}

// LoadCorpus reads a corpus from the JSON file at path. An empty path loads
// the embedded default corpus.
func LoadCorpus(path string) (*CorpusStore, error) {
	data := defaultCorpus
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus file %q: %w", path, err)
		}
		data = fileData
	}
	return NewCorpusStore(data)
}

// NewCorpusStore decodes JSON corpus data and assigns each entry its
// corpus index. Indexes are 0-based and sequential in file order; the
// term-weighting model relies on this matching exactly.
func NewCorpusStore(data []byte) (*CorpusStore, error) {
	var entries []model.DocumentationEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}

	s := &CorpusStore{
		entries: entries,
		byID:    make(map[string]*model.DocumentationEntry, len(entries)),
	}

	seenSources := make(map[string]struct{})
	seenTypes := make(map[string]struct{})

	for i := range s.entries {
		entry := &s.entries[i]
		if entry.ID == "" {
			return nil, fmt.Errorf("corpus entry at position %d has no id", i)
		}
		if _, dup := s.byID[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate corpus entry id %q", entry.ID)
		}
		entry.CorpusIndex = i
		s.byID[entry.ID] = entry

		if _, seen := seenSources[entry.Source]; !seen {
			seenSources[entry.Source] = struct{}{}
			s.sources = append(s.sources, entry.Source)
		}
		if _, seen := seenTypes[entry.Type]; !seen {
			seenTypes[entry.Type] = struct{}{}
			s.types = append(s.types, entry.Type)
		}
	}

	return s, nil
}

// Entries returns all entries in corpus order. Callers must not mutate the
// returned slice or its elements.
func (s *CorpusStore) Entries() []model.DocumentationEntry {
	return s.entries
}

// Len returns the number of entries in the corpus.
func (s *CorpusStore) Len() int {
	return len(s.entries)
}

// EntryByID returns the entry with the given document id.
func (s *CorpusStore) EntryByID(id string) (*model.DocumentationEntry, bool) {
	entry, ok := s.byID[id]
	return entry, ok
}

// ExampleByID scans every entry's code examples for a matching example id
// and returns the example together with its owning entry.
func (s *CorpusStore) ExampleByID(id string) (*model.DocumentationEntry, *model.CodeExample, bool) {
	for i := range s.entries {
		entry := &s.entries[i]
		for j := range entry.CodeExamples {
			if entry.CodeExamples[j].ID == id {
				return entry, &entry.CodeExamples[j], true
			}
		}
	}
	return nil, nil, false
}

// Sources returns the distinct source tags in first-occurrence order.
func (s *CorpusStore) Sources() []string {
	return s.sources
}

// Types returns the distinct content type tags in first-occurrence order.
func (s *CorpusStore) Types() []string {
	return s.types
}
