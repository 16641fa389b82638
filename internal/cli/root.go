package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
	flagDelay   time.Duration
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "careerpath",
		Short: "Career recommendation wizard",
		Long:  "careerpath asks about your goals, interests and skills in three steps and suggests professions that fit, with a PDF you can keep.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd, version)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: ~/.config/careerpath/careerpath.toml)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Mirror log output to stderr")
	cmd.PersistentFlags().DurationVar(&flagDelay, "delay", 0, "Override the simulated analysis delay")

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newWizardCmd(version))
	cmd.AddCommand(newRenderCmd(version))
	cmd.AddCommand(newExportCmd(version))

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print careerpath version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "careerpath", version)
		},
	}
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}
