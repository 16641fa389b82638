package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/careerpath/internal/chart"
	"github.com/druarnfield/careerpath/internal/exec"
	"github.com/druarnfield/careerpath/internal/export"
	"github.com/druarnfield/careerpath/internal/page"
	"github.com/druarnfield/careerpath/internal/tui/app"
	"github.com/druarnfield/careerpath/internal/wizard"
	"github.com/spf13/cobra"
)

// chartSize is the pixel size of the SVG charts embedded in exports.
const chartSize = 320

func newWizardCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Run the interactive career wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd, version)
		},
	}
}

func runWizard(cmd *cobra.Command, version string) error {
	e, err := loadEnv(version)
	if err != nil {
		return err
	}
	defer e.close()

	timeout, err := e.cfg.ExportTimeout()
	if err != nil {
		return err
	}

	charts := chart.NewRenderer(e.theme, chartSize)
	renderer := export.NewChromedpRenderer(e.cfg.Export.ChromePath, timeout)
	if path, err := renderer.Available(); err != nil {
		e.logger.Warn("pdf export unavailable", slog.String("error", err.Error()))
	} else {
		e.logger.Debug("pdf export browser", slog.String("path", path))
	}

	model, err := app.New(app.Options{
		Source: e.source,
		Charts: charts,
		NewExporter: func(p *page.Page) wizard.Exporter {
			return &export.PageExporter{
				Page:     p,
				Charts:   charts,
				Renderer: renderer,
				Theme:    e.theme,
				Logger:   e.logger,
				Now:      time.Now,
			}
		},
		AfterExport:   e.afterExport,
		Logger:        e.logger,
		Delay:         e.delay,
		Filename:      e.exportPath(""),
		RequireInput:  e.cfg.Wizard.RequireInput,
		MarkdownStyle: e.cfg.Wizard.MarkdownStyle,
	})
	if err != nil {
		return fmt.Errorf("building wizard: %w", err)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}

// afterExport records the file and, when configured, opens it.
func (e *env) afterExport(ctx context.Context, path string) error {
	e.recordExport(path)
	if !e.cfg.Export.Open {
		return nil
	}
	return exec.Open(ctx, &exec.DefaultRunner{}, path)
}
