// Package search implements the relevance-ranking pipeline: score every
// corpus entry against the processed query, apply source/type filters,
// sort by score, and cut off low-relevance results.
package search

import (
	"fmt"
	"sort"
	"strings"

	internalerrors "github.com/devref/docsearch/internal/errors"
	"github.com/devref/docsearch/internal/queryproc"
	"github.com/devref/docsearch/internal/weighting"
	"github.com/devref/docsearch/model"
	"github.com/devref/docsearch/services"
	"github.com/devref/docsearch/store"
)

// relevanceThreshold is the minimum score a result must exceed to be
// returned. The comparison is strict: a score of exactly 0.2 is dropped.
const relevanceThreshold = 0.2

// Service implements the search logic over a single immutable corpus.
// It fulfills the services.Searcher and services.CodeExampleProvider
// interfaces.
type Service struct {
	corpus      *store.CorpusStore
	scorer      *Scorer
	highlighter services.Highlighter
}

// NewService creates a new search Service.
func NewService(corpus *store.CorpusStore, weightingModel *weighting.Model, highlighter services.Highlighter) (*Service, error) {
	if corpus == nil {
		return nil, fmt.Errorf("corpus store cannot be nil")
	}
	if weightingModel == nil {
		return nil, fmt.Errorf("weighting model cannot be nil")
	}
	if highlighter == nil {
		return nil, fmt.Errorf("highlighter cannot be nil")
	}
	if weightingModel.DocCount() != corpus.Len() {
		return nil, fmt.Errorf("weighting model covers %d documents but corpus has %d", weightingModel.DocCount(), corpus.Len())
	}

	return &Service{
		corpus:      corpus,
		scorer:      NewScorer(weightingModel),
		highlighter: highlighter,
	}, nil
}

// Search ranks the whole corpus against the query and returns the
// filtered, sorted, thresholded results. Corpus entries are copied into
// fresh RankedResults; the originals are never mutated.
func (s *Service) Search(query string, filters services.SearchFilters) (services.SearchResult, error) {
	processed := queryproc.Process(query)

	results := make([]model.RankedResult, 0, s.corpus.Len())
	for i := range s.corpus.Entries() {
		entry := &s.corpus.Entries()[i]
		results = append(results, model.RankedResult{
			DocumentationEntry: *entry,
			RelevanceScore:     s.scorer.Score(processed, entry),
		})
	}

	results = applySourceFilter(results, filters.Sources)
	results = applyTypeFilter(results, filters.Types)

	// Stable sort: equal scores keep corpus order, so ordering is
	// deterministic without a secondary key.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	kept := results[:0]
	for _, result := range results {
		if result.RelevanceScore > relevanceThreshold {
			kept = append(kept, result)
		}
	}
	results = kept

	return services.SearchResult{
		Results: results,
		Count:   len(results),
		Intent:  processed.Intent,
	}, nil
}

// applySourceFilter retains entries whose source is in the filter set.
// Both sides are lower-cased, so source matching is case-insensitive.
func applySourceFilter(results []model.RankedResult, sources []string) []model.RankedResult {
	if len(sources) == 0 {
		return results
	}

	wanted := make(map[string]struct{}, len(sources))
	for _, source := range sources {
		wanted[strings.ToLower(source)] = struct{}{}
	}

	filtered := results[:0]
	for _, result := range results {
		if _, ok := wanted[strings.ToLower(result.Source)]; ok {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// applyTypeFilter retains entries whose type is in the filter set.
// Type tags are canonical lowercase identifiers, so matching is
// case-sensitive.
func applyTypeFilter(results []model.RankedResult, types []string) []model.RankedResult {
	if len(types) == 0 {
		return results
	}

	wanted := make(map[string]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}

	filtered := results[:0]
	for _, result := range results {
		if _, ok := wanted[result.Type]; ok {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// Sources returns the distinct source tags across the corpus in
// first-occurrence order.
func (s *Service) Sources() []string {
	return s.corpus.Sources()
}

// Types returns the distinct content type tags across the corpus in
// first-occurrence order.
func (s *Service) Types() []string {
	return s.corpus.Types()
}

// CodeExamplesByID looks id up first as a document id; if the document
// exists and has code examples, all of them are returned. Otherwise every
// entry's code examples are scanned for a matching example id and that
// single example is returned. Each example carries highlighted code;
// highlighting failures degrade to the raw code and never fail the lookup.
func (s *Service) CodeExamplesByID(id string) (*model.CodeExampleResult, error) {
	if entry, ok := s.corpus.EntryByID(id); ok && len(entry.CodeExamples) > 0 {
		result := &model.CodeExampleResult{
			DocumentID:    entry.ID,
			DocumentTitle: entry.Title,
			CodeExamples:  make([]model.HighlightedExample, 0, len(entry.CodeExamples)),
		}
		for _, example := range entry.CodeExamples {
			result.CodeExamples = append(result.CodeExamples, s.highlightExample(example))
		}
		return result, nil
	}

	if entry, example, ok := s.corpus.ExampleByID(id); ok {
		return &model.CodeExampleResult{
			DocumentID:    entry.ID,
			DocumentTitle: entry.Title,
			CodeExamples:  []model.HighlightedExample{s.highlightExample(*example)},
		}, nil
	}

	return nil, internalerrors.NewCodeExampleNotFoundError(id)
}

func (s *Service) highlightExample(example model.CodeExample) model.HighlightedExample {
	highlighted := s.highlighter.Highlight(example.Code, example.Language)
	return model.HighlightedExample{
		CodeExample:     example,
		HighlightedCode: highlighted.Code,
		Fallback:        highlighted.Fallback,
	}
}
