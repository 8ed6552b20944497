package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 820px;
      line-height: 1.5;
      color: #111827;
    }
    h1 { margin-bottom: 0.25rem; }
    h2 {
      border-bottom: 1px solid #d1d5db;
      padding-bottom: 0.25rem;
      margin-top: 1.75rem;
      text-transform: uppercase;
      font-size: 1.05rem;
      letter-spacing: 0.04em;
    }
    h3 { margin-bottom: 0.25rem; font-size: 1rem; }
    a { color: #1d4ed8; }
    ul { margin-top: 0.25rem; }
  </style>
</head>
<body>
{{.Content}}
</body>
</html>`))

// HTMLRenderer converts Markdown into a standalone preview page.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer. Raw HTML in the input is escaped.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Fragment converts markdown to an HTML fragment.
func (h *HTMLRenderer) Fragment(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Page converts markdown to a full HTML document titled title.
func (h *HTMLRenderer) Page(title, markdown string) (string, error) {
	fragment, err := h.Fragment(markdown)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = previewTemplate.Execute(&buf, struct {
		Title   string
		Content template.HTML
	}{
		Title:   title,
		Content: template.HTML(fragment),
	})
	if err != nil {
		return "", fmt.Errorf("execute preview template: %w", err)
	}
	return buf.String(), nil
}
