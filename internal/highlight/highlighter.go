// Package highlight adapts the chroma syntax highlighter to the degrade-
// gracefully contract the service needs: highlighting never fails, it
// falls back to the original code instead.
package highlight

import (
	"log"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/devref/docsearch/services"
)

// Highlighter renders code snippets to HTML markup with CSS classes, the
// same shape the UI consumes from highlight.js output.
type Highlighter struct {
	style     *chroma.Style
	formatter *html.Formatter
}

// New creates a Highlighter with the default style.
func New() *Highlighter {
	return &Highlighter{
		style: styles.Get("github"),
		formatter: html.New(
			html.WithClasses(true),
			html.PreventSurroundingPre(true),
		),
	}
}

// Highlight renders code as highlighted HTML. A non-empty language selects
// a lexer by name or alias; an empty language triggers content analysis.
// On any failure (unknown language, analysis miss, tokenize or format
// error) the original code is returned unchanged with Fallback set — the
// caller must always get a usable result.
func (h *Highlighter) Highlight(code, language string) services.HighlightResult {
	lexer := h.selectLexer(code, language)
	if lexer == nil {
		return services.HighlightResult{Code: code, Fallback: true}
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		log.Printf("Warning: failed to tokenize code for language %q: %v", language, err)
		return services.HighlightResult{Code: code, Fallback: true}
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		log.Printf("Warning: failed to format highlighted code for language %q: %v", language, err)
		return services.HighlightResult{Code: code, Fallback: true}
	}

	return services.HighlightResult{Code: buf.String()}
}

func (h *Highlighter) selectLexer(code, language string) chroma.Lexer {
	if language != "" {
		return lexers.Get(language)
	}
	return lexers.Analyse(code)
}
