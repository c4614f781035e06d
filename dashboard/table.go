package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const rowTemplate = `{{range .}}<tr><td>{{.Name}}</td><td>{{formatScore .Score}}</td><td>{{.Risk}}</td><td>{{.Reason}}</td><td>{{formatTimestamp .CreatedAt}}</td></tr>
{{end}}`

// TableRenderer turns a record sequence into a tbody fragment, one row per
// record in input order. Each render produces a fresh fragment; the previous
// content is fully replaced, never patched.
type TableRenderer struct {
	tmpl *template.Template
}

func NewTableRenderer() *TableRenderer {
	funcMap := template.FuncMap{
		"formatScore":     formatScore,
		"formatTimestamp": formatTimestamp,
	}
	return &TableRenderer{
		tmpl: template.Must(template.New("rows").Funcs(funcMap).Parse(rowTemplate)),
	}
}

func (r *TableRenderer) RenderRows(records []StudentRecord) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, records); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// formatScore renders a score with two decimals; an absent score reads 0.00.
func formatScore(score *float64) string {
	if score == nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", *score)
}

// formatTimestamp renders an RFC3339 timestamp as a readable date-time.
// Empty stays empty; an unparseable value passes through as-is.
func formatTimestamp(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format("02 Jan 2006 15:04")
}
