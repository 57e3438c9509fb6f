package cli

import (
	"os"

	"github.com/sitthaveet/cre-ts-skill/internal/config"
	"github.com/sitthaveet/cre-ts-skill/internal/toolchain"

	"github.com/spf13/cobra"
)

func newSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [path] [-- cre-args...]",
		Short: "Run the platform CLI's workflow simulation",
		Long: `Simulate forwards the given path (default ".") and any arguments after
"--" to "cre workflow simulate", streaming its output and exiting with the
same code the platform CLI exits with.

Unless --no-default-target is given (or inject_target is disabled in the
configuration), a default --target flag is added when the forwarded
arguments do not already contain one.`,
		Args: cobra.ArbitraryArgs,
		RunE: runSimulate,
	}

	cmd.Flags().Bool("no-default-target", false, "Never inject a default --target flag")

	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	extra := []string{}
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		extra = args[at:]
		args = args[:at]
	}
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	configPath, _ := cmd.Flags().GetString("config")
	noDefault, _ := cmd.Flags().GetBool("no-default-target")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return emitFailure("%v", err)
	}

	opts := toolchain.SimulateOptions{
		InjectTarget: cfg.InjectTarget() && !noDefault,
		Target:       cfg.Simulation.DefaultTarget,
	}

	code, err := toolchain.Simulate(path, extra, opts)
	if err != nil {
		return emitFailure("%v", err)
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
