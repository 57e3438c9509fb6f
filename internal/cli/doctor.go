package cli

import (
	"github.com/sitthaveet/cre-ts-skill/internal/report"
	"github.com/sitthaveet/cre-ts-skill/internal/toolchain"

	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check whether the platform CLI is installed",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	return report.Print(toolchain.CheckCLI())
}
