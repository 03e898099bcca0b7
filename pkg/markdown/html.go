package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// InlineToHTML converts a single-line Markdown text without the wrapping paragraph.
// Used for flashcard fields where a <p> adds unwanted margins.
func InlineToHTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	result := strings.TrimSpace(string(markdown.ToHTML([]byte(md), p, renderer)))
	if strings.Count(result, "<p>") == 1 && strings.HasPrefix(result, "<p>") && strings.HasSuffix(result, "</p>") {
		result = strings.TrimSuffix(strings.TrimPrefix(result, "<p>"), "</p>")
	}
	return result
}
