package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var htmlFiles embed.FS

var List,
	Recipe,
	Mail *template.Template

// Init parses the embedded templates. Must run before any handler executes.
func Init(staticAssetPath string) error {
	funcs := template.FuncMap{
		"StaticAssetPath": func() string { return staticAssetPath },
	}
	tmpls, err := template.New("all").Funcs(funcs).ParseFS(htmlFiles, "*.html")
	if err != nil {
		return err
	}
	List = ensure(tmpls, "list.html")
	Recipe = ensure(tmpls, "recipe.html")
	Mail = ensure(tmpls, "mail.html")
	return nil
}

func ensure(templates *template.Template, name string) *template.Template {
	tmpl := templates.Lookup(name)
	if tmpl == nil {
		panic("template " + name + " not found")
	}
	return tmpl
}
