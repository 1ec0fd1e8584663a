package render

import (
	"embed"
	"html/template"
)

// PageTemplate is the template name used with gin's c.HTML.
const PageTemplate = "page.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}
