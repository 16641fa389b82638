// Package chart draws the results visualisation: a radar of the top
// recommendation's required skills and a "Career Progress" line. Charts are
// produced as SVG for the PDF export and as styled text for the terminal.
package chart

import (
	"fmt"
	"html"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/careerpath/internal/career"
)

// Progress is the fixed series plotted on the career progress line.
var Progress = []float64{0, 25, 50, 75, 100}

// ProgressLabel is the line chart's dataset label.
const ProgressLabel = "Career Progress"

// Theme holds chart colours as CSS colour strings.
type Theme struct {
	Text       string
	Background string
	Grid       string
	Accent     string
	Fill       string
}

// DefaultTheme matches the application palette.
func DefaultTheme() Theme {
	return Theme{
		Text:       "#EEEEEE",
		Background: "#222831",
		Grid:       "#31363F",
		Accent:     "#76ABAE",
		Fill:       "rgba(118, 171, 174, 0.2)",
	}
}

// Renderer builds and holds the most recently created charts. It is safe for
// concurrent use.
type Renderer struct {
	theme Theme
	size  int

	mu     sync.Mutex
	skills []string
	stages []string
	radar  string
	line   string
}

// NewRenderer creates a renderer drawing square charts of the given size in
// pixels. Sizes below 200 are raised to 200.
func NewRenderer(theme Theme, size int) *Renderer {
	if size < 200 {
		size = 200
	}
	return &Renderer{theme: theme, size: size}
}

// CreateCharts draws charts for recs. Only the first recommendation feeds the
// radar; an empty slice clears the charts.
func (r *Renderer) CreateCharts(recs []career.Profession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(recs) == 0 {
		r.skills, r.stages, r.radar, r.line = nil, nil, "", ""
		return
	}

	r.skills = append([]string(nil), recs[0].RequiredSkills...)
	r.stages = stageLabels(recs[0].CareerPath, len(Progress))
	r.radar = r.radarSVG()
	r.line = r.lineSVG()
}

// SVG returns the radar and line charts. Both are "" before CreateCharts.
func (r *Renderer) SVG() (radar, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.radar, r.line
}

// SkillScores returns the radar value plotted for each skill. Scores are a
// fixed descending series so the shape is stable for a given skill list.
func SkillScores(n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = math.Max(40, 90-15*float64(i))
	}
	return scores
}

// stageLabels maps the career path onto n points, padding with generic labels.
func stageLabels(path []string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		if i < len(path) {
			labels[i] = path[i]
		} else {
			labels[i] = fmt.Sprintf("Stage %d", i+1)
		}
	}
	return labels
}

func (r *Renderer) radarSVG() string {
	s := r.size
	cx, cy := float64(s)/2, float64(s)/2
	radius := float64(s)/2 - 50
	n := len(r.skills)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" class="chart chart-radar">`, s, s, s, s)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, r.theme.Background)

	if n == 0 {
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" fill="%s" text-anchor="middle">No skills listed</text></svg>`, cx, cy, r.theme.Text)
		return b.String()
	}

	point := func(i int, value float64) (float64, float64) {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		d := radius * value / 100
		return cx + d*math.Cos(angle), cy + d*math.Sin(angle)
	}

	// Grid rings and spokes.
	for _, ring := range []float64{25, 50, 75, 100} {
		pts := make([]string, n)
		for i := range pts {
			x, y := point(i, ring)
			pts[i] = fmt.Sprintf("%.1f,%.1f", x, y)
		}
		fmt.Fprintf(&b, `<polygon points="%s" fill="none" stroke="%s"/>`, strings.Join(pts, " "), r.theme.Grid)
	}
	for i := 0; i < n; i++ {
		x, y := point(i, 100)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`, cx, cy, x, y, r.theme.Grid)
		lx, ly := point(i, 118)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" fill="%s" font-size="12" text-anchor="middle">%s</text>`,
			lx, ly, r.theme.Text, html.EscapeString(r.skills[i]))
	}

	// Data polygon.
	scores := SkillScores(n)
	pts := make([]string, n)
	for i, v := range scores {
		x, y := point(i, v)
		pts[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}
	fmt.Fprintf(&b, `<polygon points="%s" fill="%s" stroke="%s" stroke-width="2"/>`,
		strings.Join(pts, " "), r.theme.Fill, r.theme.Accent)

	b.WriteString(`</svg>`)
	return b.String()
}

func (r *Renderer) lineSVG() string {
	w, h := r.size*2, r.size
	left, right, top, bottom := 50.0, 20.0, 30.0, 50.0
	pw, ph := float64(w)-left-right, float64(h)-top-bottom

	x := func(i int) float64 { return left + pw*float64(i)/float64(len(Progress)-1) }
	y := func(v float64) float64 { return top + ph - ph*v/100 }

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" class="chart chart-line">`, w, h, w, h)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, r.theme.Background)
	fmt.Fprintf(&b, `<text x="%.1f" y="20" fill="%s" font-size="13">%s</text>`, left, r.theme.Text, ProgressLabel)

	for _, v := range []float64{0, 25, 50, 75, 100} {
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`, left, y(v), left+pw, y(v), r.theme.Grid)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="end">%.0f</text>`, left-6, y(v)+4, r.theme.Text, v)
	}

	pts := make([]string, len(Progress))
	for i, v := range Progress {
		pts[i] = fmt.Sprintf("%.1f,%.1f", x(i), y(v))
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="middle">%s</text>`,
			x(i), top+ph+20, r.theme.Text, html.EscapeString(r.stages[i]))
	}

	// Area under the line, then the line itself.
	area := fmt.Sprintf("%.1f,%.1f %s %.1f,%.1f", x(0), y(0), strings.Join(pts, " "), x(len(Progress)-1), y(0))
	fmt.Fprintf(&b, `<polygon points="%s" fill="%s" stroke="none"/>`, area, r.theme.Fill)
	fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`, strings.Join(pts, " "), r.theme.Accent)

	b.WriteString(`</svg>`)
	return b.String()
}

// Terminal renders the charts as text: one bar per skill and a block
// sparkline for the progress line. Returns "" before CreateCharts.
func (r *Renderer) Terminal(width int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.radar == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(r.theme.Accent))
	grid := lipgloss.NewStyle().Foreground(lipgloss.Color(r.theme.Grid))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(r.theme.Text))

	labelWidth := 0
	for _, s := range r.skills {
		labelWidth = max(labelWidth, lipgloss.Width(s))
	}
	barWidth := max(width-labelWidth-8, 5)

	var b strings.Builder
	b.WriteString(label.Bold(true).Render("Skills"))
	b.WriteString("\n")
	for i, v := range SkillScores(len(r.skills)) {
		filled := int(v / 100 * float64(barWidth))
		fmt.Fprintf(&b, "  %-*s %s%s %3.0f\n",
			labelWidth, r.skills[i],
			accent.Render(strings.Repeat("█", filled)),
			grid.Render(strings.Repeat("░", barWidth-filled)),
			v)
	}

	b.WriteString("\n")
	b.WriteString(label.Bold(true).Render(ProgressLabel))
	b.WriteString("\n  ")
	b.WriteString(accent.Render(Sparkline(Progress)))
	b.WriteString("  ")
	b.WriteString(grid.Render(strings.Join(r.stages, " → ")))
	b.WriteString("\n")

	return b.String()
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline maps values in [0, 100] onto block characters.
func Sparkline(values []float64) string {
	out := make([]rune, len(values))
	for i, v := range values {
		v = math.Min(100, math.Max(0, v))
		out[i] = sparkBlocks[int(v/100*float64(len(sparkBlocks)-1))]
	}
	return string(out)
}
