package cli

import (
	"errors"

	"github.com/sitthaveet/cre-ts-skill/internal/report"

	"github.com/spf13/cobra"
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creskill",
		Short: "Developer tooling for CRE workflow projects",
		Long: `creskill helps developers build workflows for the CRE distributed
execution platform. It validates workflow project structure, heuristically
checks source code against platform limits, wraps the platform CLI for
simulation, and fetches reference documentation.

Every command prints a single line of JSON on stdout; human-readable
progress goes to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (optional)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output on stderr")

	cmd.AddCommand(
		newAnalyzeCommand(),
		newValidateCommand(),
		newDoctorCommand(),
		newDocsCommand(),
		newSimulateCommand(),
		newChainsCommand(),
	)

	return cmd
}

// emitFailure prints the structured failure envelope on stdout and returns
// an error so the process exits non-zero.
func emitFailure(format string, args ...any) error {
	failure := report.NewFailure(format, args...)
	_ = report.Print(failure)
	return errors.New(failure.Error)
}
