package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/careerpath/internal/career"
	"github.com/druarnfield/careerpath/internal/tui/components"
)

// field is one labelled input belonging to a wizard step.
type field struct {
	step  int
	label string
	input textinput.Model
}

// FormModel holds the profile inputs for steps 1 and 2. Only the fields of
// the current step receive keys.
type FormModel struct {
	styles components.Styles
	fields []field
	step   int
	focus  int // index into fields
}

const (
	fieldGoals = iota
	fieldInterests
	fieldSkills
)

// NewFormModel creates the form with the step 1 goals field focused.
func NewFormModel(styles components.Styles) FormModel {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = "› "
		ti.CharLimit = 280
		ti.Width = 60
		return ti
	}

	m := FormModel{
		styles: styles,
		fields: []field{
			fieldGoals:     {step: 1, label: "Career goals", input: newInput("e.g. work remotely, lead a team")},
			fieldInterests: {step: 1, label: "Interests", input: newInput("e.g. technology, design, music")},
			fieldSkills:    {step: 2, label: "Current skills", input: newInput("e.g. Python, public speaking")},
		},
	}
	m.FocusStep(1)
	return m
}

// FocusStep focuses the first field of step, blurring all others.
func (m *FormModel) FocusStep(step int) tea.Cmd {
	m.step = step
	for i := range m.fields {
		if m.fields[i].step == step {
			return m.focusIndex(i)
		}
	}
	m.blurAll()
	return nil
}

func (m *FormModel) focusIndex(i int) tea.Cmd {
	m.blurAll()
	m.focus = i
	return m.fields[i].input.Focus()
}

func (m *FormModel) blurAll() {
	for i := range m.fields {
		m.fields[i].input.Blur()
	}
}

// stepFields returns the indices of the current step's fields.
func (m FormModel) stepFields() []int {
	var idx []int
	for i, f := range m.fields {
		if f.step == m.step {
			idx = append(idx, i)
		}
	}
	return idx
}

// cycle moves focus within the current step's fields.
func (m *FormModel) cycle(dir int) tea.Cmd {
	idx := m.stepFields()
	if len(idx) == 0 {
		return nil
	}
	pos := 0
	for i, v := range idx {
		if v == m.focus {
			pos = i
		}
	}
	pos = (pos + dir + len(idx)) % len(idx)
	return m.focusIndex(idx[pos])
}

// Profile returns the current input values.
func (m FormModel) Profile() career.Profile {
	return career.Profile{
		Goals:         m.fields[fieldGoals].input.Value(),
		Interests:     m.fields[fieldInterests].input.Value(),
		CurrentSkills: m.fields[fieldSkills].input.Value(),
	}
}

// SetProfile fills the inputs.
func (m *FormModel) SetProfile(p career.Profile) {
	m.fields[fieldGoals].input.SetValue(p.Goals)
	m.fields[fieldInterests].input.SetValue(p.Interests)
	m.fields[fieldSkills].input.SetValue(p.CurrentSkills)
}

// Update handles focus movement and forwards other keys to the focused input.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			cmd := m.cycle(1)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.cycle(-1)
			return m, cmd
		}
	}

	if len(m.stepFields()) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

// View renders the current step's fields.
func (m FormModel) View() string {
	var b strings.Builder
	for _, i := range m.stepFields() {
		f := m.fields[i]
		label := f.label
		if i == m.focus {
			b.WriteString(m.styles.Title.Render(label))
		} else {
			b.WriteString(m.styles.Label.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n\n")
	}
	return b.String()
}
