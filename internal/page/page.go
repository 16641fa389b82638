// Package page is a small in-memory element tree standing in for the wizard's
// HTML page. Elements are addressed by ID and carry a class set, text, inner
// HTML and a hidden flag. The TUI renders a Page; tests inspect one directly.
package page

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// Element IDs and classes used by the wizard layout.
const (
	IDForm     = "careerForm"
	IDNext     = "nextBtn"
	IDPrev     = "prevBtn"
	IDDownload = "downloadPDF"
	IDResults  = "results"
	IDStatus   = "status"

	ClassStep        = "step"
	ClassStepContent = "step-content"
	ClassHidden      = "hidden"
	ClassActive      = "active"
	ClassCompleted   = "completed"

	// StepCount is the number of wizard steps.
	StepCount = 3
)

// ErrMissingElement is returned when a required element is absent.
var ErrMissingElement = errors.New("missing element")

// StepID returns the content container ID for step n (1-based).
func StepID(n int) string { return fmt.Sprintf("step%d", n) }

// IndicatorID returns the progress indicator ID for step n (1-based).
func IndicatorID(n int) string { return fmt.Sprintf("indicator%d", n) }

// RequiredIDs lists every element the wizard looks up.
func RequiredIDs() []string {
	ids := []string{IDForm, IDNext, IDPrev, IDDownload, IDResults}
	for n := 1; n <= StepCount; n++ {
		ids = append(ids, StepID(n), IndicatorID(n))
	}
	return ids
}

// Element is a single node in the page.
type Element struct {
	ID        string
	Text      string
	InnerHTML string
	classes   map[string]bool
}

// HasClass reports whether the element carries class c.
func (e *Element) HasClass(c string) bool { return e.classes[c] }

// AddClass adds each class.
func (e *Element) AddClass(cs ...string) {
	for _, c := range cs {
		e.classes[c] = true
	}
}

// RemoveClass removes each class.
func (e *Element) RemoveClass(cs ...string) {
	for _, c := range cs {
		delete(e.classes, c)
	}
}

// ToggleClass adds c when on is true and removes it otherwise.
func (e *Element) ToggleClass(c string, on bool) {
	if on {
		e.AddClass(c)
	} else {
		e.RemoveClass(c)
	}
}

// Classes returns the element's classes sorted.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Hidden reports whether the element carries the hidden class.
func (e *Element) Hidden() bool { return e.HasClass(ClassHidden) }

// Page holds elements in insertion order.
type Page struct {
	elements map[string]*Element
	order    []string
}

// NewEmpty creates a page with no elements.
func NewEmpty() *Page {
	return &Page{elements: make(map[string]*Element)}
}

// New builds the standard wizard layout: the form, three indicators, three
// step containers (only step 1 visible), the results container and the
// navigation buttons.
func New() *Page {
	p := NewEmpty()
	p.Add(IDForm)
	for n := 1; n <= StepCount; n++ {
		p.Add(IndicatorID(n), ClassStep)
	}
	for n := 1; n <= StepCount; n++ {
		el := p.Add(StepID(n), ClassStepContent)
		if n != 1 {
			el.AddClass(ClassHidden)
		}
	}
	p.Add(IDResults)
	p.Add(IDStatus)
	p.Add(IDPrev).AddClass(ClassHidden)
	p.Add(IDNext).Text = "Next"
	p.Add(IDDownload).Text = "Download PDF"
	return p
}

// Add inserts an element, replacing any existing element with the same ID
// while keeping its position.
func (p *Page) Add(id string, classes ...string) *Element {
	if _, exists := p.elements[id]; !exists {
		p.order = append(p.order, id)
	}
	el := &Element{ID: id, classes: make(map[string]bool)}
	el.AddClass(classes...)
	p.elements[id] = el
	return el
}

// Remove deletes an element.
func (p *Page) Remove(id string) {
	delete(p.elements, id)
	p.order = slices.DeleteFunc(p.order, func(s string) bool { return s == id })
}

// Get returns the element with the given ID, or nil.
func (p *Page) Get(id string) *Element {
	return p.elements[id]
}

// Lookup returns the element with the given ID or ErrMissingElement.
func (p *Page) Lookup(id string) (*Element, error) {
	el := p.elements[id]
	if el == nil {
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, id)
	}
	return el, nil
}

// QueryClass returns all elements carrying class c, in insertion order.
func (p *Page) QueryClass(c string) []*Element {
	var out []*Element
	for _, id := range p.order {
		if el := p.elements[id]; el.HasClass(c) {
			out = append(out, el)
		}
	}
	return out
}

// Validate checks that every ID in RequiredIDs is present, reporting all
// missing IDs at once.
func (p *Page) Validate() error {
	var errs []error
	for _, id := range RequiredIDs() {
		if _, err := p.Lookup(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
