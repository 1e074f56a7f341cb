package weighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devref/docsearch/model"
)

func buildTestModel() *Model {
	entries := []model.DocumentationEntry{
		{Title: "Widget Guide", Content: "widget widget setup"},
		{Title: "Gadget Reference", Content: "gadget setup"},
		{Title: "General Notes", Content: "setup setup notes"},
	}
	for i := range entries {
		entries[i].CorpusIndex = i
	}
	return BuildModel(entries)
}

func TestImportanceAbsentTerms(t *testing.T) {
	m := buildTestModel()

	assert.Zero(t, m.Importance("nonexistent", 0), "term absent from the corpus should score 0")
	assert.Zero(t, m.Importance("gadget", 0), "term absent from this document should score 0")
}

func TestImportanceOutOfRangeIndex(t *testing.T) {
	m := buildTestModel()

	assert.Zero(t, m.Importance("widget", -1))
	assert.Zero(t, m.Importance("widget", 99))
}

func TestImportanceScalesWithTermFrequency(t *testing.T) {
	m := buildTestModel()

	// "widget" appears 3x in doc 0 (title + content); same idf in both
	// lookups, so frequency alone drives the ratio.
	single := m.Importance("gadget", 1)
	assert.Greater(t, single, 0.0)

	tripled := m.Importance("widget", 0)
	assert.Greater(t, tripled, 0.0)
	// Both terms occur in exactly one document, so idf is identical and
	// the scores differ by the tf ratio 3:2.
	assert.InDelta(t, tripled/single, 3.0/2.0, 1e-9)
}

func TestImportanceFavorsDistinctiveTerms(t *testing.T) {
	m := buildTestModel()

	// "setup" appears in every document; "gadget" only in one. With equal
	// tf, the rarer term must weigh more.
	assert.Greater(t, m.Importance("gadget", 1), m.Importance("setup", 1))
}

func TestBuildModelIndexesInCorpusOrder(t *testing.T) {
	m := buildTestModel()

	// Each document's distinctive term must be addressed by its position.
	assert.Greater(t, m.Importance("widget", 0), 0.0)
	assert.Greater(t, m.Importance("gadget", 1), 0.0)
	assert.Greater(t, m.Importance("notes", 2), 0.0)
	assert.Equal(t, 3, m.DocCount())
}

func TestDocumentFrequency(t *testing.T) {
	m := buildTestModel()

	assert.Equal(t, 3, m.DocumentFrequency("setup"))
	assert.Equal(t, 1, m.DocumentFrequency("widget"))
	assert.Equal(t, 0, m.DocumentFrequency("nonexistent"))
}
