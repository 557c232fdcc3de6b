package plan

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// pageTemplate wraps converted plan content in a minimal standalone page.
const pageTemplate = `<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.6; color: #1f2937; }
h1 { color: #7c3aed; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d1d5db; padding: 0.4rem 0.8rem; text-align: left; }
em { color: #6b7280; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`

// pageData holds data passed to the HTML page template.
type pageData struct {
	Title   string
	Content template.HTML
}

// Exporter converts saved plan Markdown into standalone HTML files.
type Exporter struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Linkify,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
			),
		),
		tmpl: template.Must(template.New("plan").Parse(pageTemplate)),
	}
}

// Render converts plan Markdown into a complete HTML document.
func (e *Exporter) Render(title, markdown string) ([]byte, error) {
	var content bytes.Buffer
	if err := e.md.Convert([]byte(markdown), &content); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var page bytes.Buffer
	err := e.tmpl.Execute(&page, pageData{
		Title:   title,
		Content: template.HTML(content.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return page.Bytes(), nil
}

// ExportFile converts plan Markdown and writes the HTML document to outPath.
func (e *Exporter) ExportFile(title, markdown, outPath string) error {
	page, err := e.Render(title, markdown)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, page, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
