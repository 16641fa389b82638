package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/careerpath/internal/page"
	"github.com/druarnfield/careerpath/internal/tui/components"
)

// stepTitles labels the progress indicators.
var stepTitles = [page.StepCount]string{"Profile", "Skills", "Results"}

// renderIndicators draws the step progress bar from the page's indicator
// classes, so it always reflects what the controller last set.
func renderIndicators(s components.Styles, p *page.Page) string {
	parts := make([]string, 0, page.StepCount)
	for n := 1; n <= page.StepCount; n++ {
		el := p.Get(page.IndicatorID(n))
		title := fmt.Sprintf("%d %s", n, stepTitles[n-1])

		var part string
		switch {
		case el == nil:
			part = s.StepPending.Render(s.StatusPending + " " + title)
		case el.HasClass(page.ClassCompleted):
			part = s.StepDone.Render(s.StatusDone + " " + title)
		case el.HasClass(page.ClassActive):
			part = s.StepActive.Render(s.StatusActive + " " + title)
		default:
			part = s.StepPending.Render(s.StatusPending + " " + title)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, s.Connector.Render(" ─── "))
}

// visibleStep returns the step whose container is shown, or 0 if none is.
func visibleStep(p *page.Page) int {
	for n := 1; n <= page.StepCount; n++ {
		if el := p.Get(page.StepID(n)); el != nil && !el.Hidden() {
			return n
		}
	}
	return 0
}

// renderButtons draws the navigation row from the page's button elements.
func renderButtons(s components.Styles, p *page.Page, step int) string {
	var buttons []string
	if prev := p.Get(page.IDPrev); prev != nil && !prev.Hidden() {
		buttons = append(buttons, s.Button.Render("← Previous"))
	}
	if step < page.StepCount {
		if next := p.Get(page.IDNext); next != nil {
			buttons = append(buttons, s.PrimaryButton.Render(next.Text+" →"))
		}
	} else if dl := p.Get(page.IDDownload); dl != nil {
		buttons = append(buttons, s.PrimaryButton.Render(dl.Text))
	}
	return joinHorizontal(buttons)
}

func joinHorizontal(blocks []string) string {
	spaced := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, "  ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, spaced...)
}
