package wizard

import (
	"fmt"

	"github.com/druarnfield/careerpath/internal/page"
)

// PageView applies controller mutations to a page.Page.
type PageView struct {
	page *page.Page
}

// NewPageView binds a page, failing if any element the wizard uses is missing.
func NewPageView(p *page.Page) (*PageView, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("binding page: %w", err)
	}
	return &PageView{page: p}, nil
}

// Page returns the bound page.
func (v *PageView) Page() *page.Page { return v.page }

// SetStepHidden satisfies View.
func (v *PageView) SetStepHidden(n int, hidden bool) {
	v.must(page.StepID(n)).ToggleClass(page.ClassHidden, hidden)
}

// SetPrevHidden satisfies View.
func (v *PageView) SetPrevHidden(hidden bool) {
	v.must(page.IDPrev).ToggleClass(page.ClassHidden, hidden)
}

// SetNextLabel satisfies View.
func (v *PageView) SetNextLabel(label string) {
	v.must(page.IDNext).Text = label
}

// SetIndicator satisfies View.
func (v *PageView) SetIndicator(n int, state Indicator) {
	el := v.must(page.IndicatorID(n))
	el.ToggleClass(page.ClassCompleted, state == IndicatorCompleted)
	el.ToggleClass(page.ClassActive, state == IndicatorActive)
}

// SetResults satisfies View.
func (v *PageView) SetResults(html string) {
	v.must(page.IDResults).InnerHTML = html
}

// SetStatus satisfies View. The status line is optional in the layout.
func (v *PageView) SetStatus(msg string) {
	if el := v.page.Get(page.IDStatus); el != nil {
		el.Text = msg
	}
}

// must looks up an element validated at bind time. An element removed after
// binding is a programming error.
func (v *PageView) must(id string) *page.Element {
	el, err := v.page.Lookup(id)
	if err != nil {
		panic(fmt.Sprintf("wizard: %v", err))
	}
	return el
}
