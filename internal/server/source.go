package server

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/ziadkadry99/folio/internal/export"
)

var sourceRenderer = goldmark.New(
	goldmark.WithExtensions(
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

var sourcePage = template.Must(template.New("source").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Name}}</title>
<style>
body { margin: 0; font-family: sans-serif; }
nav { padding: 0.75rem 1rem; border-bottom: 1px solid #e5e7eb; }
nav a { margin-right: 1rem; }
pre { margin: 0; padding: 1rem; overflow-x: auto; }
</style>
</head>
<body>
<nav><a href="/">Preview</a><a href="/source/html">HTML</a><a href="/source/css">CSS</a><a href="/source/js">JS</a></nav>
{{.Code}}
</body>
</html>
`))

var lexers = map[export.Kind]string{
	export.KindMarkup:     "html",
	export.KindStylesheet: "css",
	export.KindScript:     "javascript",
}

// renderSource renders generated source as a syntax-highlighted page.
func renderSource(kind export.Kind, code string) (string, error) {
	var buf bytes.Buffer
	if err := sourceRenderer.Convert([]byte(fenced(lexers[kind], code)), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s: %w", kind, err)
	}

	var page bytes.Buffer
	err := sourcePage.Execute(&page, struct {
		Name string
		Code template.HTML
	}{
		Name: export.FileName(kind),
		Code: template.HTML(buf.String()),
	})
	if err != nil {
		return "", fmt.Errorf("rendering source page: %w", err)
	}
	return page.String(), nil
}

// fenced wraps code in a markdown code fence longer than any backtick run
// inside it.
func fenced(lang, code string) string {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	return fence + lang + "\n" + code + "\n" + fence + "\n"
}
