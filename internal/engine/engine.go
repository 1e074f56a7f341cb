// Package engine wires the corpus store, term-weighting model, search
// service, and highlighter into one explicitly constructed value that is
// shared read-only by request handlers.
package engine

import (
	"fmt"
	"log"
	"sync"

	"github.com/devref/docsearch/internal/highlight"
	"github.com/devref/docsearch/internal/search"
	"github.com/devref/docsearch/internal/weighting"
	"github.com/devref/docsearch/model"
	"github.com/devref/docsearch/services"
	"github.com/devref/docsearch/store"
)

// snapshot bundles everything derived from one corpus load. A snapshot is
// immutable; reloading builds a complete new one and swaps the pointer, so
// in-flight requests never observe a half-built model.
type snapshot struct {
	corpus  *store.CorpusStore
	service *search.Service
}

// Engine owns the current corpus snapshot and the highlighter. It
// implements services.SearchEngine.
type Engine struct {
	mu          sync.RWMutex
	snap        *snapshot
	highlighter services.Highlighter
	corpusPath  string // empty means the embedded default corpus
}

var _ services.SearchEngine = (*Engine)(nil)

// NewEngine loads the corpus from corpusPath (or the embedded default when
// empty), builds the weighting model eagerly, and returns a ready engine.
func NewEngine(corpusPath string) (*Engine, error) {
	highlighter := highlight.New()

	snap, err := buildSnapshot(corpusPath, highlighter)
	if err != nil {
		return nil, err
	}

	return &Engine{
		snap:        snap,
		highlighter: highlighter,
		corpusPath:  corpusPath,
	}, nil
}

func buildSnapshot(corpusPath string, highlighter services.Highlighter) (*snapshot, error) {
	corpus, err := store.LoadCorpus(corpusPath)
	if err != nil {
		return nil, err
	}

	weightingModel := weighting.BuildModel(corpus.Entries())

	service, err := search.NewService(corpus, weightingModel, highlighter)
	if err != nil {
		return nil, fmt.Errorf("failed to build search service: %w", err)
	}

	return &snapshot{corpus: corpus, service: service}, nil
}

// current returns the active snapshot.
func (e *Engine) current() *snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap
}

// Reload rebuilds the corpus snapshot off to the side and publishes it
// atomically. On failure the previous snapshot stays active.
func (e *Engine) Reload() error {
	snap, err := buildSnapshot(e.corpusPath, e.highlighter)
	if err != nil {
		return fmt.Errorf("corpus reload failed: %w", err)
	}

	e.mu.Lock()
	e.snap = snap
	e.mu.Unlock()

	log.Printf("Corpus reloaded: %d entries", snap.corpus.Len())
	return nil
}

// CorpusSize returns the number of entries in the active corpus.
func (e *Engine) CorpusSize() int {
	return e.current().corpus.Len()
}

// Search ranks the active corpus against the query.
func (e *Engine) Search(query string, filters services.SearchFilters) (services.SearchResult, error) {
	return e.current().service.Search(query, filters)
}

// Sources returns the distinct source tags of the active corpus.
func (e *Engine) Sources() []string {
	return e.current().service.Sources()
}

// Types returns the distinct content type tags of the active corpus.
func (e *Engine) Types() []string {
	return e.current().service.Types()
}

// CodeExamplesByID looks up code examples in the active corpus.
func (e *Engine) CodeExamplesByID(id string) (*model.CodeExampleResult, error) {
	return e.current().service.CodeExamplesByID(id)
}

// Highlight renders a code snippet; it never fails (see services.Highlighter).
func (e *Engine) Highlight(code, language string) services.HighlightResult {
	return e.highlighter.Highlight(code, language)
}
