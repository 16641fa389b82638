// Package results renders recommendations as an HTML fragment for export and
// as Markdown for the terminal.
package results

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/druarnfield/careerpath/internal/career"
)

// PathSeparator joins career path stages.
const PathSeparator = " → "

var cardTemplate = template.Must(template.New("cards").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`{{range .}}
<div class="result-card">
    <h3 class="text-xl font-bold mb-2">{{.Name}}</h3>
    <p><strong>Required Skills:</strong> {{join .RequiredSkills ", "}}</p>
    <p><strong>Career Path:</strong> {{join .CareerPath "` + PathSeparator + `"}}</p>
    <p><strong>Salary Range:</strong> {{.SalaryRange}}</p>
    <p><strong>Market Statistics:</strong> {{.MarketStats}}</p>
{{- with .SuccessStory}}
    <p class="success-story"><strong>Success Story:</strong> {{.}}</p>
{{- end}}
</div>
{{end}}`))

// HTML renders one result card per recommendation. An empty slice yields "".
func HTML(recs []career.Profession) string {
	if len(recs) == 0 {
		return ""
	}
	var b strings.Builder
	// strings.Builder does not fail and the template is fixed.
	if err := cardTemplate.Execute(&b, recs); err != nil {
		panic(fmt.Sprintf("results: rendering cards: %v", err))
	}
	return b.String()
}

// Markdown renders the same content as HTML in Markdown form.
func Markdown(recs []career.Profession) string {
	var b strings.Builder
	for i, p := range recs {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", p.Name)
		fmt.Fprintf(&b, "**Required Skills:** %s\n\n", strings.Join(p.RequiredSkills, ", "))
		fmt.Fprintf(&b, "**Career Path:** %s\n\n", strings.Join(p.CareerPath, PathSeparator))
		fmt.Fprintf(&b, "**Salary Range:** %s\n\n", p.SalaryRange)
		fmt.Fprintf(&b, "**Market Statistics:** %s\n", p.MarketStats)
		if p.SuccessStory != "" {
			fmt.Fprintf(&b, "\n> %s\n", p.SuccessStory)
		}
	}
	return b.String()
}

// Terminal renders recommendations for display in a terminal using glamour.
// Style is a glamour standard style name ("dark", "light", "notty", ...) or
// "auto" to detect the background. A width of zero disables wrapping.
func Terminal(recs []career.Profession, style string, width int) (string, error) {
	if len(recs) == 0 {
		return "", nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(Markdown(recs))
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
