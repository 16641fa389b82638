package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/careerpath/internal/tui/components"
)

// stepHelp is the explain panel text for each step.
var stepHelp = map[int]string{
	1: "Tell us what you want from a career and what you enjoy. Short phrases are fine, for example \"lead a product team\" or \"music, puzzles\".",
	2: "List the skills you already have. Analyze sends your profile for a recommendation; it takes about a second.",
	3: "These are the professions that match your profile, with the skills they need and a typical career path. Press d to save them as a PDF.",
}

// ExplainPanel renders a bordered help panel with word-wrapped text.
type ExplainPanel struct {
	styles  components.Styles
	text    string
	visible bool
	width   int
}

// NewExplainPanel creates an explain panel (hidden by default).
func NewExplainPanel(styles components.Styles) ExplainPanel {
	return ExplainPanel{
		styles: styles,
		width:  60,
	}
}

// SetText returns a copy with updated text.
func (p ExplainPanel) SetText(text string) ExplainPanel {
	p.text = text
	return p
}

// SetVisible returns a copy with updated visibility.
func (p ExplainPanel) SetVisible(v bool) ExplainPanel {
	p.visible = v
	return p
}

// Visible reports whether the panel is shown.
func (p ExplainPanel) Visible() bool {
	return p.visible
}

// SetWidth returns a copy with updated width.
func (p ExplainPanel) SetWidth(w int) ExplainPanel {
	if w > 0 {
		p.width = w
	}
	return p
}

// View renders the panel. Returns empty string when not visible.
func (p ExplainPanel) View() string {
	if !p.visible || p.text == "" {
		return ""
	}

	// Border and padding take four columns.
	innerWidth := max(p.width-4, 20)

	return p.styles.Panel.
		Width(p.width).
		Render(
			lipgloss.JoinVertical(lipgloss.Left,
				p.styles.Subtitle.Render("About this step"),
				"",
				wordWrap(p.text, innerWidth),
			),
		)
}

// wordWrap breaks text into lines that fit within the given width.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]

	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)

	return strings.Join(lines, "\n")
}
