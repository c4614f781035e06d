package views

import (
	"bytes"
	"embed"
	"html/template"
	"sync"
)

//go:embed *.html
var TemplatesFS embed.FS

var (
	templates *template.Template
	parseOnce sync.Once
	parseErr  error
)

// Render executes the named page template and returns the rendered bytes.
// Templates are parsed from the embedded filesystem on first use.
func Render(name string, data interface{}) ([]byte, error) {
	parseOnce.Do(func() {
		templates, parseErr = template.ParseFS(TemplatesFS, "*.html")
	})
	if parseErr != nil {
		return nil, parseErr
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
