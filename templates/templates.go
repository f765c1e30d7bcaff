// Package templates holds the embedded HTML templates and the function
// map they render with.
package templates

import (
	"embed"
	"html/template"
	"time"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
)

//go:embed *.tmpl
var files embed.FS

// FuncMap exposes the formatting helpers templates are allowed to call.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money":    format.MoneyFromCents,
		"date":     format.Date,
		"datetime": format.DateTime,
		"ago":      format.Ago,
		"now":      time.Now,
	}
}

// Load parses every embedded template with the shared function map.
func Load() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files, "*.tmpl")
}
