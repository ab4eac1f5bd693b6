package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses the embedded page templates for the router.
func Load() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.tmpl"))
}
