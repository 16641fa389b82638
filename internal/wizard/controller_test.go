package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/druarnfield/careerpath/internal/career"
	"github.com/druarnfield/careerpath/internal/page"
)

// --- helpers ---

type fakeCharts struct {
	calls [][]career.Profession
}

func (f *fakeCharts) CreateCharts(recs []career.Profession) {
	f.calls = append(f.calls, recs)
}

type fakeExporter struct {
	elementID string
	filename  string
	err       error
}

func (f *fakeExporter) ExportToPDF(_ context.Context, elementID, filename string) error {
	f.elementID = elementID
	f.filename = filename
	return f.err
}

type failingSource struct{ err error }

func (s failingSource) Recommend(context.Context, career.Profile) ([]career.Profession, error) {
	return nil, s.err
}

type fixture struct {
	page   *page.Page
	sched  *ManualScheduler
	charts *fakeCharts
	ctrl   *Controller
}

func newFixture(t *testing.T, mutate func(*Options)) fixture {
	t.Helper()
	p := page.New()
	view, err := NewPageView(p)
	if err != nil {
		t.Fatalf("NewPageView: %v", err)
	}
	f := fixture{page: p, sched: &ManualScheduler{}, charts: &fakeCharts{}}
	opts := Options{View: view, Scheduler: f.sched, Charts: f.charts}
	if mutate != nil {
		mutate(&opts)
	}
	f.ctrl, err = NewController(opts)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return f
}

func visibleSteps(p *page.Page) []int {
	var out []int
	for n := 1; n <= Steps; n++ {
		if !p.Get(page.StepID(n)).Hidden() {
			out = append(out, n)
		}
	}
	return out
}

// --- tests ---

func TestNewController_StartsAtStepOne(t *testing.T) {
	f := newFixture(t, nil)

	if f.ctrl.Step() != 1 {
		t.Errorf("step = %d, want 1", f.ctrl.Step())
	}
	if got := visibleSteps(f.page); len(got) != 1 || got[0] != 1 {
		t.Errorf("visible steps = %v, want [1]", got)
	}
	if !f.page.Get(page.IDPrev).Hidden() {
		t.Error("previous button should be hidden at step 1")
	}
}

func TestNewController_RequiresViewAndScheduler(t *testing.T) {
	if _, err := NewController(Options{Scheduler: &ManualScheduler{}}); err == nil {
		t.Error("expected error without view")
	}
	view, _ := NewPageView(page.New())
	if _, err := NewController(Options{View: view}); err == nil {
		t.Error("expected error without scheduler")
	}
	if _, err := NewController(Options{View: view, Scheduler: &ManualScheduler{}, Delay: -time.Second}); err == nil {
		t.Error("expected error for negative delay")
	}
}

func TestNewPageView_MissingElement(t *testing.T) {
	p := page.New()
	p.Remove(page.StepID(2))
	p.Remove(page.IDNext)

	_, err := NewPageView(p)
	if !errors.Is(err, page.ErrMissingElement) {
		t.Fatalf("err = %v, want ErrMissingElement", err)
	}
	for _, id := range []string{"#step2", "#nextBtn"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error %q should name %s", err, id)
		}
	}
}

func TestShowStep_ExactlyOneVisible(t *testing.T) {
	f := newFixture(t, nil)

	for n := 1; n <= Steps; n++ {
		f.ctrl.ShowStep(n)
		got := visibleSteps(f.page)
		if len(got) != 1 || got[0] != n {
			t.Errorf("ShowStep(%d): visible = %v, want [%d]", n, got, n)
		}
	}
}

func TestShowStep_Indicators(t *testing.T) {
	f := newFixture(t, nil)

	for n := 1; n <= Steps; n++ {
		f.ctrl.ShowStep(n)
		for i := 1; i <= Steps; i++ {
			el := f.page.Get(page.IndicatorID(i))
			completed, active := el.HasClass(page.ClassCompleted), el.HasClass(page.ClassActive)
			switch {
			case i < n:
				if !completed || active {
					t.Errorf("n=%d i=%d: classes %v, want completed only", n, i, el.Classes())
				}
			case i == n:
				if completed || !active {
					t.Errorf("n=%d i=%d: classes %v, want active only", n, i, el.Classes())
				}
			default:
				if completed || active {
					t.Errorf("n=%d i=%d: classes %v, want neither", n, i, el.Classes())
				}
			}
		}
	}
}

func TestShowStep_Controls(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		step       int
		prevHidden bool
		label      string
	}{
		{1, true, LabelNext},
		{2, false, LabelAnalyze},
		{3, false, LabelNext},
	}
	for _, tt := range tests {
		f.ctrl.ShowStep(tt.step)
		if got := f.page.Get(page.IDPrev).Hidden(); got != tt.prevHidden {
			t.Errorf("step %d: prev hidden = %v, want %v", tt.step, got, tt.prevHidden)
		}
		if got := f.page.Get(page.IDNext).Text; got != tt.label {
			t.Errorf("step %d: next label = %q, want %q", tt.step, got, tt.label)
		}
	}
}

func TestShowStep_OutOfRangeIgnored(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.ShowStep(0)
	f.ctrl.ShowStep(4)
	if got := visibleSteps(f.page); len(got) != 1 || got[0] != 1 {
		t.Errorf("visible = %v, want [1]", got)
	}
}

func TestRetreat_AtStepOne(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Retreat()
	if f.ctrl.Step() != 1 {
		t.Errorf("step = %d, want 1", f.ctrl.Step())
	}
}

func TestAdvance_StepOneToTwo(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Advance()

	if f.ctrl.Step() != 2 {
		t.Fatalf("step = %d, want 2", f.ctrl.Step())
	}
	if f.page.Get(page.IDPrev).Hidden() {
		t.Error("previous button should be visible")
	}
	if got := f.page.Get(page.IDNext).Text; got != LabelAnalyze {
		t.Errorf("next label = %q, want %q", got, LabelAnalyze)
	}
	if f.sched.Pending() != 0 {
		t.Error("advancing from step 1 should not schedule anything")
	}
}

func TestAdvance_AnalyzeCompletesAfterDelay(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Advance()
	f.ctrl.Advance()

	// Nothing changes until the scheduled callback runs.
	if f.ctrl.Step() != 2 {
		t.Fatalf("step = %d before delay, want 2", f.ctrl.Step())
	}
	if !f.ctrl.Pending() {
		t.Error("analysis should be pending")
	}
	if len(f.sched.Delays) != 1 || f.sched.Delays[0] != DefaultDelay {
		t.Errorf("delays = %v, want [%s]", f.sched.Delays, DefaultDelay)
	}

	f.sched.Flush()

	if f.ctrl.Step() != 3 {
		t.Fatalf("step = %d after delay, want 3", f.ctrl.Step())
	}
	if f.ctrl.Pending() {
		t.Error("analysis should no longer be pending")
	}
	if !strings.Contains(f.page.Get(page.IDResults).InnerHTML, "Software Developer") {
		t.Error("results should contain Software Developer")
	}
	if got := visibleSteps(f.page); len(got) != 1 || got[0] != 3 {
		t.Errorf("visible = %v, want [3]", got)
	}
	if len(f.charts.calls) != 1 {
		t.Errorf("charts created %d times, want 1", len(f.charts.calls))
	}
}

func TestAdvance_AtLastStepIsNoOp(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Advance()
	f.ctrl.Advance()
	f.sched.Flush()

	f.ctrl.Advance()
	if f.ctrl.Step() != 3 {
		t.Errorf("step = %d, want 3", f.ctrl.Step())
	}
	if f.sched.Pending() != 0 {
		t.Error("advance at step 3 should not schedule")
	}
}

func TestAdvance_OverlappingAnalyzeSchedulesOnce(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Advance()
	f.ctrl.Advance()
	f.ctrl.Advance()
	f.ctrl.Advance()

	if n := f.sched.Flush(); n != 1 {
		t.Errorf("ran %d callbacks, want 1", n)
	}
	if f.ctrl.Step() != 3 {
		t.Errorf("step = %d, want 3", f.ctrl.Step())
	}
}

func TestRetreat_IgnoredWhilePending(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Advance()
	f.ctrl.Advance()
	f.ctrl.Retreat()

	if f.ctrl.Step() != 2 {
		t.Errorf("step = %d, want 2", f.ctrl.Step())
	}
}

func TestRetreat_FromResultsReturnsToAnalyze(t *testing.T) {
	f := newFixture(t, nil)
	f.ctrl.Advance()
	f.ctrl.Advance()
	f.sched.Flush()

	f.ctrl.Retreat()
	if f.ctrl.Step() != 2 {
		t.Errorf("step = %d, want 2", f.ctrl.Step())
	}
	if got := f.page.Get(page.IDNext).Text; got != LabelAnalyze {
		t.Errorf("next label = %q, want %q", got, LabelAnalyze)
	}
}

func TestAdvance_SourceErrorStaysOnStepTwo(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Source = failingSource{err: career.ErrRateLimited}
	})
	f.ctrl.Advance()
	f.ctrl.Advance()
	f.sched.Flush()

	if f.ctrl.Step() != 2 {
		t.Errorf("step = %d, want 2", f.ctrl.Step())
	}
	if f.ctrl.Pending() {
		t.Error("pending should be cleared after failure")
	}
	if status := f.page.Get(page.IDStatus).Text; !strings.Contains(status, "rate limit") {
		t.Errorf("status = %q, want rate limit message", status)
	}
	if len(f.charts.calls) != 0 {
		t.Error("charts should not be created on failure")
	}
}

func TestAdvance_RequireInput(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.RequireInput = true })

	f.ctrl.Advance()
	if f.ctrl.Step() != 1 {
		t.Fatalf("step = %d, want 1 with empty input", f.ctrl.Step())
	}
	if status := f.page.Get(page.IDStatus).Text; !strings.Contains(status, "goals") {
		t.Errorf("status = %q, want mention of goals", status)
	}

	f.ctrl.SetProfile(career.Profile{Goals: "lead a team", Interests: "games"})
	f.ctrl.Advance()
	if f.ctrl.Step() != 2 {
		t.Fatalf("step = %d, want 2", f.ctrl.Step())
	}
	if status := f.page.Get(page.IDStatus).Text; status != "" {
		t.Errorf("status = %q, want cleared", status)
	}

	f.ctrl.Advance()
	if f.ctrl.Pending() {
		t.Error("analysis should not start without current skills")
	}
}

func TestDownload(t *testing.T) {
	exp := &fakeExporter{}
	f := newFixture(t, func(o *Options) {
		o.Exporter = exp
		o.Filename = "out.pdf"
	})

	if _, err := f.ctrl.Download(context.Background()); !errors.Is(err, ErrNoResults) {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}

	f.ctrl.Advance()
	f.ctrl.Advance()
	f.sched.Flush()

	name, err := f.ctrl.Download(context.Background())
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if name != "out.pdf" || exp.filename != "out.pdf" {
		t.Errorf("filename = %q / %q, want out.pdf", name, exp.filename)
	}
	if exp.elementID != page.IDResults {
		t.Errorf("elementID = %q, want %q", exp.elementID, page.IDResults)
	}
}

func TestDownload_ExporterError(t *testing.T) {
	boom := errors.New("boom")
	f := newFixture(t, func(o *Options) {
		o.Exporter = &fakeExporter{err: boom}
		o.Scheduler = ImmediateScheduler{}
	})
	f.ctrl.Advance()
	f.ctrl.Advance()

	if _, err := f.ctrl.Download(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}

func TestIndicator_String(t *testing.T) {
	if IndicatorActive.String() != "active" || IndicatorCompleted.String() != "completed" || IndicatorNone.String() != "" {
		t.Error("unexpected indicator class names")
	}
}
