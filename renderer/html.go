package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML converts a markdown document into a standalone HTML page.
func HTML(title, markdown string) (string, error) {
	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	var b bytes.Buffer
	err := page.Execute(&b, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return b.String(), nil
}
