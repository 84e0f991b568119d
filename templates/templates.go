// Package templates holds the server-rendered pages.
package templates

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed *.html
var files embed.FS

// Load parses every page with the shared helpers.
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"lower": strings.ToLower,
	}).ParseFS(files, "*.html")
}
