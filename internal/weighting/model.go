// Package weighting builds a term-importance model over the documentation
// corpus. For each document it quantifies how distinctive a term is relative
// to the whole corpus (a term-frequency × inverse-document-frequency
// statistic).
package weighting

import (
	"math"

	"github.com/devref/docsearch/internal/tokenizer"
	"github.com/devref/docsearch/model"
)

// Model holds per-document term frequencies and corpus-wide document
// frequencies. It is built once at startup and read-only afterwards, so
// concurrent lookups need no locking.
type Model struct {
	termFreqs []map[string]int // per corpus index: term -> occurrences
	docFreqs  map[string]int   // term -> number of documents containing it
	docCount  int
}

// BuildModel constructs the weighting model from the corpus entries in
// corpus order. Each entry contributes one document: its title and content
// concatenated. The document at position i is addressed by corpus index i;
// this must match the CorpusIndex assigned at load time or scoring silently
// reads the wrong statistics.
func BuildModel(entries []model.DocumentationEntry) *Model {
	m := &Model{
		termFreqs: make([]map[string]int, len(entries)),
		docFreqs:  make(map[string]int),
		docCount:  len(entries),
	}

	for i, entry := range entries {
		tokens := tokenizer.Tokenize(entry.Title + " " + entry.Content)

		freqs := make(map[string]int, len(tokens))
		for _, token := range tokens {
			freqs[token]++
		}
		m.termFreqs[i] = freqs

		for term := range freqs {
			m.docFreqs[term]++
		}
	}

	return m
}

// DocCount returns the number of documents in the model.
func (m *Model) DocCount() int {
	return m.docCount
}

// DocumentFrequency returns the number of documents containing term.
func (m *Model) DocumentFrequency(term string) int {
	return m.docFreqs[term]
}

// Importance returns the tf-idf weight of term within the document at
// corpusIndex: tf × (1 + ln(N / (1 + df))), where tf is the raw term count
// in the document, N the corpus size, and df the document frequency.
// Terms absent from the document, or from the corpus entirely, score 0.
func (m *Model) Importance(term string, corpusIndex int) float64 {
	if corpusIndex < 0 || corpusIndex >= len(m.termFreqs) {
		return 0.0
	}

	tf := m.termFreqs[corpusIndex][term]
	if tf == 0 {
		return 0.0
	}

	df := m.docFreqs[term]
	if df == 0 {
		return 0.0
	}

	idf := 1 + math.Log(float64(m.docCount)/float64(1+df))
	return float64(tf) * idf
}
