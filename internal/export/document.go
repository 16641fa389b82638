package export

import (
	"html/template"
	"strings"
	"time"

	"github.com/druarnfield/careerpath/internal/chart"
)

// DocumentData is the input to Document.
type DocumentData struct {
	Title     string
	Generated time.Time
	// Results is the results container's inner HTML, already escaped.
	Results string
	// Radar and Line are SVG charts; either may be empty.
	Radar string
	Line  string
	Theme chart.Theme
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  @page { size: A4; margin: 16mm; }
  body { background: {{.CSS.Background}}; color: {{.CSS.Text}}; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; }
  h1 { color: {{.CSS.Accent}}; }
  .generated { color: {{.CSS.Grid}}; font-size: 11px; }
  .result-card { border: 1px solid {{.CSS.Grid}}; border-radius: 8px; padding: 12px 16px; margin: 12px 0; }
  .result-card h3 { color: {{.CSS.Accent}}; margin: 0 0 8px; }
  .charts { display: flex; flex-wrap: wrap; gap: 16px; margin-top: 24px; }
  .charts svg { max-width: 100%; height: auto; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="generated">Generated {{.Generated.Format "2 January 2006 15:04"}}</p>
<div id="results">{{.ResultsHTML}}</div>
{{if or .RadarHTML .LineHTML}}<div class="charts">{{.RadarHTML}}{{.LineHTML}}</div>{{end}}
</body>
</html>
`))

// themeCSS holds validated theme colours for the stylesheet.
type themeCSS struct {
	Text       template.CSS
	Background template.CSS
	Grid       template.CSS
	Accent     template.CSS
}

// Document renders a standalone HTML page around the results fragment and
// charts, styled with the chart theme.
func Document(d DocumentData) (string, error) {
	if d.Title == "" {
		d.Title = "Career Recommendations"
	}
	if d.Generated.IsZero() {
		d.Generated = time.Now()
	}

	if d.Theme == (chart.Theme{}) {
		d.Theme = chart.DefaultTheme()
	}
	if err := d.Theme.Validate(); err != nil {
		return "", err
	}

	// The fragment and charts are produced by our own escaping renderers and
	// the colours are validated, so all are passed through as trusted.
	view := struct {
		DocumentData
		ResultsHTML template.HTML
		RadarHTML   template.HTML
		LineHTML    template.HTML
		CSS         themeCSS
	}{
		DocumentData: d,
		ResultsHTML:  template.HTML(d.Results),
		RadarHTML:    template.HTML(d.Radar),
		LineHTML:     template.HTML(d.Line),
		CSS: themeCSS{
			Text:       template.CSS(d.Theme.Text),
			Background: template.CSS(d.Theme.Background),
			Grid:       template.CSS(d.Theme.Grid),
			Accent:     template.CSS(d.Theme.Accent),
		},
	}

	var b strings.Builder
	if err := documentTemplate.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}
