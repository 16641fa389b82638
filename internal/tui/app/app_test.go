package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/careerpath/internal/career"
	"github.com/druarnfield/careerpath/internal/page"
	"github.com/druarnfield/careerpath/internal/tui/components"
	"github.com/druarnfield/careerpath/internal/wizard"
)

// --- helpers ---

type fakeExporter struct {
	calls    int
	filename string
	err      error
}

func (f *fakeExporter) ExportToPDF(_ context.Context, elementID, filename string) error {
	f.calls++
	f.filename = filename
	return f.err
}

func newTestModel(t *testing.T, opts Options) (Model, *fakeExporter) {
	t.Helper()
	exp := &fakeExporter{}
	if opts.NewExporter == nil {
		opts.NewExporter = func(*page.Page) wizard.Exporter { return exp }
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = "notty"
	}
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m, exp
}

func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(key)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// toResults drives the model through both steps and fires the analysis timer.
func toResults(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyEnter)
	if !m.Controller().Pending() {
		t.Fatal("analysis should be pending after enter on step 2")
	}
	m = send(t, m, TimerFiredMsg{ID: 0})
	if m.Step() != 3 {
		t.Fatalf("step = %d after timer, want 3", m.Step())
	}
	return m
}

// --- Explain Panel tests ---

func TestExplainPanel_HiddenByDefault(t *testing.T) {
	s := components.DefaultStyles()
	p := NewExplainPanel(s).SetText("some text")
	if got := p.View(); got != "" {
		t.Errorf("expected empty when hidden, got %q", got)
	}
}

func TestExplainPanel_VisibleWithText(t *testing.T) {
	s := components.DefaultStyles()
	p := NewExplainPanel(s).SetText("some text").SetVisible(true)
	out := p.View()
	if !strings.Contains(out, "some text") {
		t.Errorf("output should contain text, got %q", out)
	}
	if !strings.Contains(out, "About this step") {
		t.Errorf("output should contain the panel title, got %q", out)
	}
}

func TestWordWrap(t *testing.T) {
	got := wordWrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Errorf("wordWrap = %q", got)
	}
}

// --- Scheduler bridge tests ---

func TestScheduler_DrainAndFire(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.After(0, func() { ran++ })

	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}
	if s.Drain() == nil {
		t.Fatal("Drain() should return the queued tick")
	}
	if s.Drain() != nil {
		t.Error("second Drain() should return nil")
	}

	if !s.Fire(0) {
		t.Fatal("Fire(0) should find the callback")
	}
	if ran != 1 {
		t.Errorf("callback ran %d times, want 1", ran)
	}
	if s.Fire(0) {
		t.Error("a callback must only fire once")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after fire, want 0", s.Pending())
	}
}

// --- Model tests ---

func TestModel_StartsOnStepOne(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	if m.Step() != 1 {
		t.Fatalf("Step() = %d, want 1", m.Step())
	}
	out := m.View()
	if !strings.Contains(out, "Tell us about yourself") {
		t.Error("step 1 heading missing")
	}
	if !strings.Contains(out, "Next →") {
		t.Error("next button should read Next")
	}
	if strings.Contains(out, "← Previous") {
		t.Error("previous button should be hidden on step 1")
	}
}

func TestModel_TypingFillsProfile(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = typeText(t, m, "lead a team")
	m, _ = press(t, m, keyTab)
	m = typeText(t, m, "music")

	p := m.form.Profile()
	if p.Goals != "lead a team" || p.Interests != "music" {
		t.Errorf("profile = %+v", p)
	}
}

func TestModel_EnterAdvancesAndEscRetreats(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = press(t, m, keyEnter)
	if m.Step() != 2 {
		t.Fatalf("Step() = %d after enter, want 2", m.Step())
	}
	out := m.View()
	if !strings.Contains(out, "Analyze →") {
		t.Error("next button should read Analyze on step 2")
	}
	if !strings.Contains(out, "← Previous") {
		t.Error("previous button should be visible on step 2")
	}

	m, _ = press(t, m, keyEsc)
	if m.Step() != 1 {
		t.Errorf("Step() = %d after esc, want 1", m.Step())
	}
}

func TestModel_AnalysisCompletesOnTimer(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = toResults(t, m)

	out := m.View()
	if !strings.Contains(out, "Software Developer") {
		t.Errorf("results should list the recommendation, got:\n%s", out)
	}
	if !strings.Contains(out, "Download PDF") {
		t.Error("download button should be shown on step 3")
	}
	if el := m.Page().Get(page.IDResults); el == nil || !strings.Contains(el.InnerHTML, "result-card") {
		t.Error("results container should hold the rendered HTML")
	}
}

func TestModel_OverlappingEnterSchedulesOnce(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyEnter)

	if got := m.sched.Pending(); got != 1 {
		t.Errorf("scheduled callbacks = %d, want 1", got)
	}
	if m.Step() != 2 {
		t.Errorf("Step() = %d while pending, want 2", m.Step())
	}
}

func TestModel_PendingShowsStatus(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyEnter)

	if !strings.Contains(m.View(), "Analyzing your profile...") {
		t.Error("status line should show the analysis in progress")
	}
}

func TestModel_RequireInputBlocksEmptyStep(t *testing.T) {
	m, _ := newTestModel(t, Options{RequireInput: true})

	m, _ = press(t, m, keyEnter)
	if m.Step() != 1 {
		t.Fatalf("Step() = %d, want 1 with empty input", m.Step())
	}
	if !strings.Contains(m.View(), "Please fill in your goals.") {
		t.Error("view should ask for the missing field")
	}

	m = typeText(t, m, "ship things")
	m, _ = press(t, m, keyTab)
	m = typeText(t, m, "design")
	m, _ = press(t, m, keyEnter)
	if m.Step() != 2 {
		t.Errorf("Step() = %d after filling step 1, want 2", m.Step())
	}
}

func TestModel_SourceErrorStaysOnStepTwo(t *testing.T) {
	m, _ := newTestModel(t, Options{Source: failingSource{}})
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyEnter)
	m = send(t, m, TimerFiredMsg{ID: 0})

	if m.Step() != 2 {
		t.Fatalf("Step() = %d, want 2 after failed analysis", m.Step())
	}
	if !strings.Contains(m.View(), "Analysis failed") {
		t.Error("view should report the failure")
	}
}

type failingSource struct{}

func (failingSource) Recommend(context.Context, career.Profile) ([]career.Profession, error) {
	return nil, career.ErrRateLimited
}

func TestModel_DownloadExports(t *testing.T) {
	m, exp := newTestModel(t, Options{Filename: "out.pdf"})
	m = toResults(t, m)

	m, cmd := press(t, m, keyRune('d'))
	if cmd == nil {
		t.Fatal("d should start the export")
	}
	if !m.exporting {
		t.Error("model should be exporting")
	}

	msg := cmd()
	done, ok := msg.(ExportDoneMsg)
	if !ok {
		t.Fatalf("expected ExportDoneMsg, got %T", msg)
	}
	if done.Err != nil || done.Path != "out.pdf" {
		t.Errorf("done = %+v", done)
	}
	if exp.calls != 1 || exp.filename != "out.pdf" {
		t.Errorf("exporter calls = %d, filename = %q", exp.calls, exp.filename)
	}

	m = send(t, m, done)
	if m.exporting {
		t.Error("exporting should clear when done")
	}
	if !strings.Contains(m.View(), "Saved to out.pdf") {
		t.Error("view should confirm the saved file")
	}
}

func TestModel_AfterExportRuns(t *testing.T) {
	var got string
	m, _ := newTestModel(t, Options{
		Filename: "x.pdf",
		AfterExport: func(_ context.Context, path string) error {
			got = path
			return errors.New("no viewer")
		},
	})
	m = toResults(t, m)

	_, cmd := press(t, m, keyRune('d'))
	done := cmd().(ExportDoneMsg)
	if got != "x.pdf" {
		t.Errorf("AfterExport path = %q, want x.pdf", got)
	}
	if done.Path != "x.pdf" || done.Err == nil {
		t.Errorf("done = %+v, want path with error", done)
	}
}

func TestModel_ExportFailureReported(t *testing.T) {
	exp := &fakeExporter{err: errors.New("chrome crashed")}
	m, _ := newTestModel(t, Options{
		NewExporter: func(*page.Page) wizard.Exporter { return exp },
	})
	m = toResults(t, m)

	m, cmd := press(t, m, keyRune('d'))
	m = send(t, m, cmd())
	if !strings.Contains(m.View(), "Export failed") {
		t.Error("view should report the export failure")
	}
}

func TestModel_NavigationBlockedWhileExporting(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = toResults(t, m)

	m, _ = press(t, m, keyRune('d'))
	m, _ = press(t, m, keyEsc)
	if m.Step() != 3 {
		t.Errorf("Step() = %d, esc should be ignored while exporting", m.Step())
	}
}

func TestModel_ToggleExplain(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if strings.Contains(m.View(), "About this step") {
		t.Fatal("explain panel should start hidden")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if !strings.Contains(m.View(), "About this step") {
		t.Error("ctrl+e should show the explain panel")
	}
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModel_IndicatorsFollowSteps(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = toResults(t, m)

	p := m.Page()
	for n := 1; n <= 2; n++ {
		if !p.Get(page.IndicatorID(n)).HasClass(page.ClassCompleted) {
			t.Errorf("indicator %d should be completed", n)
		}
	}
	if !p.Get(page.IndicatorID(3)).HasClass(page.ClassActive) {
		t.Error("indicator 3 should be active")
	}
	if visibleStep(p) != 3 {
		t.Errorf("visibleStep = %d, want 3", visibleStep(p))
	}
}
