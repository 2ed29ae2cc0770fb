// Package templates holds the storefront's HTML templates, embedded so
// the server runs from a single binary regardless of working directory.
package templates

import (
	"embed"
	"html/template"

	"github.com/movshovich/scarves-store/pkg/view"
)

//go:embed *.tmpl
var files embed.FS

func Parse() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"money":       view.MoneyFromCents,
		"freeOrMoney": view.FreeOrMoney,
	}).ParseFS(files, "*.tmpl")
}

// MustParse panics on a template error. Template mistakes are build-time
// mistakes; there is no recovering at runtime.
func MustParse() *template.Template {
	t, err := Parse()
	if err != nil {
		panic(err)
	}
	return t
}
