package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/druarnfield/careerpath/internal/career"
	"github.com/druarnfield/careerpath/internal/chart"
	"github.com/druarnfield/careerpath/internal/export"
	"github.com/druarnfield/careerpath/internal/page"
	"github.com/druarnfield/careerpath/internal/wizard"
	"github.com/spf13/cobra"
)

func newExportCmd(version string) *cobra.Command {
	var (
		out     string
		from    string
		profile profileFlags
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the recommendations PDF without the interactive wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(version)
			if err != nil {
				return err
			}
			defer e.close()

			timeout, err := e.cfg.ExportTimeout()
			if err != nil {
				return err
			}

			var src career.Source = e.source
			if from != "" {
				src = career.FileSource{Path: from}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			path, err := runHeadless(ctx, headless{
				Source:   src,
				Renderer: export.NewChromedpRenderer(e.cfg.Export.ChromePath, timeout),
				Theme:    e.theme,
				Logger:   e.logger,
				Profile:  profile.profile(),
				Filename: e.exportPath(out),
			})
			if err != nil {
				return err
			}

			if err := e.afterExport(ctx, path); err != nil {
				e.logger.Warn("post-export step failed", slog.String("error", err.Error()))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "PDF destination (default: export.dir/export.filename)")
	cmd.Flags().StringVar(&from, "from", "", "Read recommendations from a JSON or YAML file instead of the source")
	profile.register(cmd)

	return cmd
}

// headless configures runHeadless.
type headless struct {
	Source   career.Source
	Renderer export.PDFRenderer
	Theme    chart.Theme
	Logger   *slog.Logger
	Profile  career.Profile
	Filename string
}

// runHeadless drives the same controller and page the TUI uses through all
// three steps with an immediate scheduler, then downloads the PDF.
func runHeadless(ctx context.Context, h headless) (string, error) {
	p := page.New()
	view, err := wizard.NewPageView(p)
	if err != nil {
		return "", err
	}

	charts := chart.NewRenderer(h.Theme, chartSize)
	ctrl, err := wizard.NewController(wizard.Options{
		View:      view,
		Scheduler: wizard.ImmediateScheduler{},
		Source:    h.Source,
		Charts:    charts,
		Exporter: &export.PageExporter{
			Page:     p,
			Charts:   charts,
			Renderer: h.Renderer,
			Theme:    h.Theme,
			Logger:   h.Logger,
			Now:      time.Now,
		},
		Logger:   h.Logger,
		Filename: h.Filename,
	})
	if err != nil {
		return "", err
	}

	ctrl.SetProfile(h.Profile)
	for ctrl.Step() < wizard.Steps {
		before := ctrl.Step()
		ctrl.Advance()
		if ctrl.Step() == before {
			return "", fmt.Errorf("wizard stuck at step %d: %s", before, p.Get(page.IDStatus).Text)
		}
	}

	return ctrl.Download(ctx)
}
