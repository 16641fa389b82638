// Package app is the Bubble Tea front end for the career wizard. It renders a
// page.Page, routes keys to the wizard controller and runs the controller's
// scheduled callbacks on the update loop.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/careerpath/internal/career"
	"github.com/druarnfield/careerpath/internal/chart"
	"github.com/druarnfield/careerpath/internal/page"
	"github.com/druarnfield/careerpath/internal/results"
	"github.com/druarnfield/careerpath/internal/tui/components"
	"github.com/druarnfield/careerpath/internal/wizard"
)

// Options configures the TUI.
type Options struct {
	Source career.Source
	Charts *chart.Renderer
	Logger *slog.Logger

	// NewExporter builds the exporter for the model's page. Optional.
	NewExporter func(p *page.Page) wizard.Exporter

	// AfterExport runs after a successful export, off the update loop.
	AfterExport func(ctx context.Context, path string) error

	Delay         time.Duration
	Filename      string
	RequireInput  bool
	MarkdownStyle string
}

// Model is the top-level tea.Model.
type Model struct {
	styles  components.Styles
	page    *page.Page
	ctrl    *wizard.Controller
	sched   *Scheduler
	charts  *chart.Renderer
	form    FormModel
	explain ExplainPanel
	spinner spinner.Model

	markdownStyle string
	afterExport   func(ctx context.Context, path string) error
	logger        *slog.Logger

	shownStep   int
	resultsView string
	notice      string
	exporting   bool

	width    int
	height   int
	quitting bool
}

// New builds the page, binds the controller to it and returns a model showing
// step 1.
func New(opts Options) (Model, error) {
	styles := components.DefaultStyles()
	p := page.New()

	view, err := wizard.NewPageView(p)
	if err != nil {
		return Model{}, err
	}

	charts := opts.Charts
	if charts == nil {
		charts = chart.NewRenderer(chart.DefaultTheme(), 320)
	}

	var exporter wizard.Exporter
	if opts.NewExporter != nil {
		exporter = opts.NewExporter(p)
	}

	sched := NewScheduler()
	ctrl, err := wizard.NewController(wizard.Options{
		View:         view,
		Scheduler:    sched,
		Source:       opts.Source,
		Charts:       charts,
		Exporter:     exporter,
		Logger:       opts.Logger,
		Delay:        opts.Delay,
		Filename:     opts.Filename,
		RequireInput: opts.RequireInput,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		styles:        styles,
		page:          p,
		ctrl:          ctrl,
		sched:         sched,
		charts:        charts,
		form:          NewFormModel(styles),
		explain:       NewExplainPanel(styles).SetText(stepHelp[1]),
		spinner:       components.NewSpinner(styles),
		markdownStyle: opts.MarkdownStyle,
		afterExport:   opts.AfterExport,
		logger:        opts.Logger,
		shownStep:     ctrl.Step(),
		width:         80,
	}
	if m.markdownStyle == "" {
		m.markdownStyle = "auto"
	}
	return m, nil
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.explain = m.explain.SetWidth(min(msg.Width-4, 70))
		if m.shownStep == page.StepCount {
			m.renderResults()
		}
		return m, nil

	case TimerFiredMsg:
		m.sched.Fire(msg.ID)
		cmd := m.afterTransition()
		return m, tea.Batch(cmd, m.sched.Drain())

	case ExportDoneMsg:
		m.exporting = false
		m.setExportNotice(msg)
		return m, nil

	case spinner.TickMsg:
		// Let the spinner stop once the analysis is over.
		if !m.ctrl.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+e":
		m.explain = m.explain.SetVisible(!m.explain.Visible())
		return m, nil
	}

	// Navigation waits for an export in progress.
	if m.exporting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.notice = ""
		m.ctrl.Retreat()
		return m, m.afterTransition()
	case "enter":
		if m.ctrl.Step() < page.StepCount {
			m.notice = ""
			m.ctrl.SetProfile(m.form.Profile())
			m.ctrl.Advance()
			cmds := []tea.Cmd{m.afterTransition(), m.sched.Drain()}
			if m.ctrl.Pending() {
				cmds = append(cmds, m.spinner.Tick)
			}
			return m, tea.Batch(cmds...)
		}
	}

	if m.ctrl.Step() == page.StepCount {
		switch msg.String() {
		case "d":
			m.exporting = true
			m.notice = "Exporting PDF..."
			return m, m.exportCmd()
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.ctrl.Pending() {
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// afterTransition syncs the model with the controller after a step change.
func (m *Model) afterTransition() tea.Cmd {
	step := m.ctrl.Step()
	if step == m.shownStep {
		return nil
	}
	m.shownStep = step
	m.explain = m.explain.SetText(stepHelp[step])
	if step == page.StepCount {
		m.renderResults()
	}
	return m.form.FocusStep(step)
}

func (m *Model) renderResults() {
	width := max(m.width-4, 40)
	md, err := results.Terminal(m.ctrl.Results(), m.markdownStyle, width)
	if err != nil {
		// Fall back to the plain Markdown source.
		if m.logger != nil {
			m.logger.Warn("markdown rendering failed", slog.String("error", err.Error()))
		}
		md = results.Markdown(m.ctrl.Results())
	}
	m.resultsView = md + "\n" + m.charts.Terminal(width)
}

func (m Model) exportCmd() tea.Cmd {
	ctrl, after := m.ctrl, m.afterExport
	return func() tea.Msg {
		ctx := context.Background()
		path, err := ctrl.Download(ctx)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		if after != nil {
			if err := after(ctx, path); err != nil {
				return ExportDoneMsg{Path: path, Err: err}
			}
		}
		return ExportDoneMsg{Path: path}
	}
}

func (m *Model) setExportNotice(msg ExportDoneMsg) {
	switch {
	case msg.Err == nil:
		m.notice = m.styles.Success.Render(fmt.Sprintf("Saved to %s", msg.Path))
	case msg.Path != "":
		m.notice = m.styles.Warning.Render(fmt.Sprintf("Saved to %s, but: %v", msg.Path, msg.Err))
	default:
		m.notice = m.styles.Error.Render(fmt.Sprintf("Export failed: %v", msg.Err))
	}
}

// View renders the visible step.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(components.RenderBanner(m.styles))
	b.WriteString("\n\n")
	b.WriteString(renderIndicators(m.styles, m.page))
	b.WriteString("\n\n")

	step := visibleStep(m.page)
	switch step {
	case 1:
		b.WriteString(m.styles.Subtitle.Render("Tell us about yourself"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case 2:
		b.WriteString(m.styles.Subtitle.Render("What can you already do?"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case 3:
		b.WriteString(m.styles.Subtitle.Render("Your career recommendations"))
		b.WriteString("\n")
		b.WriteString(m.resultsView)
		b.WriteString("\n")
	}

	if status := m.page.Get(page.IDStatus); status != nil && status.Text != "" {
		if m.ctrl.Pending() {
			b.WriteString(m.spinner.View() + " ")
		}
		b.WriteString(m.styles.Warning.Render(status.Text))
		b.WriteString("\n\n")
	}
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	if panel := m.explain.View(); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n\n")
	}

	b.WriteString(renderButtons(m.styles, m.page, step))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render(footerHelp(step)))

	return b.String()
}

func footerHelp(step int) string {
	switch step {
	case 1:
		return "  tab: next field  enter: next  ctrl+e: explain  ctrl+c: quit"
	case 2:
		return "  enter: analyze  esc: back  ctrl+e: explain  ctrl+c: quit"
	default:
		return "  d: download PDF  esc: back  q: quit"
	}
}

// Step returns the controller's current step.
func (m Model) Step() int { return m.ctrl.Step() }

// Page returns the page the model renders.
func (m Model) Page() *page.Page { return m.page }

// Controller returns the wizard controller.
func (m Model) Controller() *wizard.Controller { return m.ctrl }
