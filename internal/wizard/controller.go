// Package wizard implements the three-step career wizard as a headless state
// machine. The Controller owns the current step and drives a View; the
// simulated analysis delay goes through an injected Scheduler so callers
// decide where the completion runs.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/druarnfield/careerpath/internal/career"
	"github.com/druarnfield/careerpath/internal/logging"
	"github.com/druarnfield/careerpath/internal/page"
	"github.com/druarnfield/careerpath/internal/results"
)

// Steps is the number of wizard steps. Step 2 is the analysis step and step 3
// shows results.
const Steps = page.StepCount

const (
	analyzeStep = 2
	resultsStep = 3
)

// Button labels for the next control.
const (
	LabelNext    = "Next"
	LabelAnalyze = "Analyze"
)

// DefaultDelay is the simulated analysis latency.
const DefaultDelay = time.Second

// DefaultFilename is the PDF export file name.
const DefaultFilename = "career-recommendations.pdf"

// ErrNoResults is returned by Download before any analysis has completed.
var ErrNoResults = errors.New("no results to export yet")

// Indicator is the state of a step's progress indicator.
type Indicator int

const (
	IndicatorNone Indicator = iota
	IndicatorActive
	IndicatorCompleted
)

// String returns the indicator's CSS-style class name, or "" for none.
func (i Indicator) String() string {
	switch i {
	case IndicatorActive:
		return page.ClassActive
	case IndicatorCompleted:
		return page.ClassCompleted
	default:
		return ""
	}
}

// View is the set of UI mutations the controller performs.
type View interface {
	// SetStepHidden hides or unhides step n's content container.
	SetStepHidden(n int, hidden bool)
	// SetPrevHidden hides or unhides the previous control.
	SetPrevHidden(hidden bool)
	// SetNextLabel relabels the next control.
	SetNextLabel(label string)
	// SetIndicator sets step n's progress indicator.
	SetIndicator(n int, state Indicator)
	// SetResults replaces the results container's HTML.
	SetResults(html string)
	// SetStatus shows a one-line status message; "" clears it.
	SetStatus(msg string)
}

// Scheduler runs fn after d. Implementations decide on which goroutine fn
// runs; the controller assumes it is the same one that calls its methods.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Charts renders the results visualisation.
type Charts interface {
	CreateCharts(recs []career.Profession)
}

// Exporter writes the contents of a page element to a PDF file.
type Exporter interface {
	ExportToPDF(ctx context.Context, elementID, filename string) error
}

// Options configures a Controller. View and Scheduler are required.
type Options struct {
	View      View
	Scheduler Scheduler
	Source    career.Source // defaults to career.MockSource
	Charts    Charts        // optional
	Exporter  Exporter      // optional; Download fails without one
	Logger    *slog.Logger  // defaults to a no-op logger

	Delay        time.Duration // defaults to DefaultDelay
	Filename     string        // defaults to DefaultFilename
	RequireInput bool
}

// Controller owns the wizard state.
type Controller struct {
	view      View
	scheduler Scheduler
	source    career.Source
	charts    Charts
	exporter  Exporter
	logger    *slog.Logger

	delay        time.Duration
	filename     string
	requireInput bool

	step    int
	pending bool
	profile career.Profile
	results []career.Profession
}

// NewController validates opts, shows step 1 and returns the controller.
func NewController(opts Options) (*Controller, error) {
	if opts.View == nil {
		return nil, errors.New("wizard: view is required")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("wizard: scheduler is required")
	}
	if opts.Delay < 0 {
		return nil, fmt.Errorf("wizard: negative delay %s", opts.Delay)
	}

	c := &Controller{
		view:         opts.View,
		scheduler:    opts.Scheduler,
		source:       opts.Source,
		charts:       opts.Charts,
		exporter:     opts.Exporter,
		logger:       opts.Logger,
		delay:        opts.Delay,
		filename:     opts.Filename,
		requireInput: opts.RequireInput,
		step:         1,
	}
	if c.source == nil {
		c.source = career.MockSource{}
	}
	if c.logger == nil {
		c.logger = slog.New(logging.NopHandler{})
	}
	if c.delay == 0 {
		c.delay = DefaultDelay
	}
	if c.filename == "" {
		c.filename = DefaultFilename
	}

	c.ShowStep(c.step)
	return c, nil
}

// Step returns the current step (1-based).
func (c *Controller) Step() int { return c.step }

// Pending reports whether the simulated analysis is in flight.
func (c *Controller) Pending() bool { return c.pending }

// Results returns the recommendations from the last completed analysis.
func (c *Controller) Results() []career.Profession { return c.results }

// Profile returns the collected input.
func (c *Controller) Profile() career.Profile { return c.profile }

// SetProfile replaces the collected input.
func (c *Controller) SetProfile(p career.Profile) { c.profile = p }

// Advance moves forward one step. At step 2 it starts the simulated analysis
// and moves to step 3 when the analysis completes. It does nothing at the
// last step or while an analysis is pending.
func (c *Controller) Advance() {
	if c.pending {
		c.logger.Debug("advance ignored, analysis pending", slog.Int("step", c.step))
		return
	}
	if c.step >= Steps {
		return
	}
	if c.requireInput {
		if field := c.profile.MissingField(c.step); field != "" {
			c.view.SetStatus(fmt.Sprintf("Please fill in your %s.", field))
			return
		}
	}
	c.view.SetStatus("")

	if c.step == analyzeStep {
		c.analyze()
		return
	}

	c.step++
	c.logger.Info("step advanced", slog.Int("step", c.step))
	c.ShowStep(c.step)
}

// Retreat moves back one step. It does nothing at step 1 or while an
// analysis is pending.
func (c *Controller) Retreat() {
	if c.pending || c.step <= 1 {
		return
	}
	c.step--
	c.logger.Info("step retreated", slog.Int("step", c.step))
	c.view.SetStatus("")
	c.ShowStep(c.step)
}

// ShowStep makes step n the only visible container and updates the
// navigation controls and progress indicators to match. It does not change
// the current step. Out-of-range n is ignored.
func (c *Controller) ShowStep(n int) {
	if n < 1 || n > Steps {
		c.logger.Warn("show step out of range", slog.Int("step", n))
		return
	}

	for i := 1; i <= Steps; i++ {
		c.view.SetStepHidden(i, true)
	}
	c.view.SetStepHidden(n, false)

	c.view.SetPrevHidden(n == 1)
	if n == analyzeStep {
		c.view.SetNextLabel(LabelAnalyze)
	} else {
		c.view.SetNextLabel(LabelNext)
	}

	for i := 1; i <= Steps; i++ {
		c.view.SetIndicator(i, IndicatorFor(i, n))
	}
}

// IndicatorFor returns the indicator state of step i when step current is shown.
func IndicatorFor(i, current int) Indicator {
	switch {
	case i < current:
		return IndicatorCompleted
	case i == current:
		return IndicatorActive
	default:
		return IndicatorNone
	}
}

func (c *Controller) analyze() {
	c.pending = true
	c.view.SetStatus("Analyzing your profile...")
	profile := c.profile.Normalize()
	start := time.Now()

	c.logger.Info("analysis started", slog.Duration("delay", c.delay))

	c.scheduler.After(c.delay, func() {
		c.pending = false

		recs, err := c.source.Recommend(context.Background(), profile)
		if err != nil {
			c.logger.Error("analysis failed", slog.String("error", err.Error()))
			c.view.SetStatus(fmt.Sprintf("Analysis failed: %v", err))
			return
		}

		c.results = recs
		c.view.SetResults(results.HTML(recs))
		c.step = resultsStep
		c.ShowStep(c.step)
		if c.charts != nil {
			c.charts.CreateCharts(recs)
		}
		c.view.SetStatus("")

		c.logger.Info("analysis completed",
			slog.Int("recommendations", len(recs)),
			slog.Duration("elapsed", time.Since(start)),
		)
	})
}

// Download exports the results container to the configured PDF file.
func (c *Controller) Download(ctx context.Context) (string, error) {
	if c.results == nil {
		return "", ErrNoResults
	}
	if c.exporter == nil {
		return "", errors.New("wizard: no exporter configured")
	}
	if err := c.exporter.ExportToPDF(ctx, page.IDResults, c.filename); err != nil {
		c.logger.Error("export failed", slog.String("file", c.filename), slog.String("error", err.Error()))
		return "", fmt.Errorf("exporting results: %w", err)
	}
	c.logger.Info("results exported", slog.String("file", c.filename))
	return c.filename, nil
}
