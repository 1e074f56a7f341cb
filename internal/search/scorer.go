package search

import (
	"math"
	"strings"

	"github.com/devref/docsearch/internal/queryproc"
	"github.com/devref/docsearch/internal/weighting"
	"github.com/devref/docsearch/model"
)

// scoreNormalizer is added to the token count when normalizing the raw
// score. It bounds the score even when the intent and title bonuses are
// large relative to a short query. Together with relevanceThreshold it is
// part of the ranking contract: changing either changes result ordering
// and cutoff behavior.
const scoreNormalizer = 3

// Scorer computes a normalized relevance score in [0,1] for a
// (query, entry) pair using the corpus term-weighting model.
type Scorer struct {
	model *weighting.Model
}

// NewScorer creates a Scorer backed by the given weighting model.
func NewScorer(m *weighting.Model) *Scorer {
	return &Scorer{model: m}
}

// Score combines term importance, intent match, and title overlap into a
// single normalized score:
//
//	termScore   = Σ Importance(token, entry.CorpusIndex) over all tokens
//	intentBonus = 1.0 if the query intent equals the entry type
//	titleBonus  = (tokens substring-matching the title / token count) * 2.0
//	score       = min((termScore + intentBonus + titleBonus) / (tokens + 3), 1.0)
//
// Raw lower-cased tokens are looked up, not stems, and duplicate tokens
// count multiple times. The result is a ranking signal, not a calibrated
// confidence.
func (s *Scorer) Score(query queryproc.ProcessedQuery, entry *model.DocumentationEntry) float64 {
	termScore := 0.0
	for _, token := range query.Tokens {
		termScore += s.model.Importance(token, entry.CorpusIndex)
	}

	intentBonus := 0.0
	if string(query.Intent) == entry.Type {
		intentBonus = 1.0
	}

	titleBonus := 0.0
	if len(query.Tokens) > 0 {
		lowerTitle := strings.ToLower(entry.Title)
		titleMatches := 0
		for _, token := range query.Tokens {
			if strings.Contains(lowerTitle, token) {
				titleMatches++
			}
		}
		titleBonus = float64(titleMatches) / float64(len(query.Tokens)) * 2.0
	}

	raw := termScore + intentBonus + titleBonus
	return math.Min(raw/float64(len(query.Tokens)+scoreNormalizer), 1.0)
}
