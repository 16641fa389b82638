package components

import "github.com/charmbracelet/lipgloss"

// Styles holds all shared Lipgloss styles used across TUI screens.
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Body          lipgloss.Style
	Muted         lipgloss.Style
	Success       lipgloss.Style
	Error         lipgloss.Style
	Warning       lipgloss.Style
	Panel         lipgloss.Style
	Label         lipgloss.Style
	Button        lipgloss.Style
	PrimaryButton lipgloss.Style
	StepDone      lipgloss.Style
	StepActive    lipgloss.Style
	StepPending   lipgloss.Style
	StatusDone    string
	StatusActive  string
	StatusPending string
	Footer        lipgloss.Style
	AccentColor   lipgloss.AdaptiveColor
	Connector     lipgloss.Style
}

// DefaultStyles returns a Styles populated with the careerpath palette.
// Uses AdaptiveColor to work in both light and dark terminals; the dark
// values match the exported PDF theme.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#3E7A7D", Dark: "#76ABAE"}
	text := lipgloss.AdaptiveColor{Light: "#222831", Dark: "#EEEEEE"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	grid := lipgloss.AdaptiveColor{Light: "#C7CCD1", Dark: "#31363F"}
	success := lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	errColor := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	warn := lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Body: lipgloss.NewStyle().
			Foreground(text),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Success: lipgloss.NewStyle().
			Foreground(success),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(errColor),

		Warning: lipgloss.NewStyle().
			Foreground(warn),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Button: lipgloss.NewStyle().
			Foreground(text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(grid).
			Padding(0, 2),

		PrimaryButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Padding(0, 2),

		StepDone: lipgloss.NewStyle().
			Foreground(success),

		StepActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		StepPending: lipgloss.NewStyle().
			Foreground(muted),

		StatusDone:    "✓",
		StatusActive:  "●",
		StatusPending: "○",

		Footer: lipgloss.NewStyle().
			Foreground(muted),

		AccentColor: accent,

		Connector: lipgloss.NewStyle().
			Foreground(grid),
	}
}
