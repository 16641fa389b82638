package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/druarnfield/careerpath/internal/career"
	"github.com/druarnfield/careerpath/internal/chart"
	"github.com/druarnfield/careerpath/internal/results"
	"github.com/spf13/cobra"
)

// Output formats accepted by render.
const (
	formatHTML     = "html"
	formatMarkdown = "markdown"
	formatTerminal = "terminal"
)

// terminalWidth is the wrap width used when rendering outside the TUI.
const terminalWidth = 80

type profileFlags struct {
	goals     string
	interests string
	skills    string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.goals, "goals", "", "Career goals")
	cmd.Flags().StringVar(&f.interests, "interests", "", "Interests")
	cmd.Flags().StringVar(&f.skills, "skills", "", "Current skills")
}

func (f profileFlags) profile() career.Profile {
	return career.Profile{Goals: f.goals, Interests: f.interests, CurrentSkills: f.skills}.Normalize()
}

func newRenderCmd(version string) *cobra.Command {
	var (
		format  string
		from    string
		profile profileFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print recommendations as HTML, Markdown or styled terminal text",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(version)
			if err != nil {
				return err
			}
			defer e.close()

			recs, err := recommendations(cmd.Context(), e.source, from, profile.profile())
			if err != nil {
				return err
			}
			style := e.cfg.Wizard.MarkdownStyle
			return renderTo(cmd.OutOrStdout(), recs, format, style, e.theme)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTerminal, "Output format: html, markdown or terminal")
	cmd.Flags().StringVar(&from, "from", "", "Read recommendations from a JSON or YAML file instead of the source")
	profile.register(cmd)

	return cmd
}

// recommendations loads recs from a file when from is set, otherwise asks src.
func recommendations(ctx context.Context, src career.Source, from string, p career.Profile) ([]career.Profession, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if from != "" {
		recs, err := career.LoadFile(from)
		if err != nil {
			return nil, err
		}
		return recs.Professions, nil
	}
	recs, err := src.Recommend(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("getting recommendations: %w", err)
	}
	return recs, nil
}

func renderTo(w io.Writer, recs []career.Profession, format, style string, theme chart.Theme) error {
	switch format {
	case formatHTML:
		_, err := io.WriteString(w, results.HTML(recs))
		return err
	case formatMarkdown:
		_, err := io.WriteString(w, results.Markdown(recs))
		return err
	case formatTerminal:
		out, err := results.Terminal(recs, style, terminalWidth)
		if err != nil {
			return fmt.Errorf("rendering markdown: %w", err)
		}
		charts := chart.NewRenderer(theme, chartSize)
		charts.CreateCharts(recs)
		_, err = fmt.Fprintf(w, "%s\n%s\n", out, charts.Terminal(terminalWidth))
		return err
	default:
		return fmt.Errorf("unknown format %q (want html, markdown or terminal)", format)
	}
}
