package cli

import (
	"os"

	"github.com/sitthaveet/cre-ts-skill/internal/report"
	"github.com/sitthaveet/cre-ts-skill/internal/workflow"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check that a directory has the expected workflow project layout",
		Long: `Validate checks the given path (default ".") for the files a workflow
project is expected to contain: an entry point, a workflow manifest, and
the recommended npm and TypeScript configuration files.

The command always exits 0; validation misses are reported in the JSON
body, not as a process failure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	result := workflow.Validate(path)

	if verbose {
		for _, e := range result.Errors {
			color.New(color.FgRed).Fprintf(os.Stderr, "[-] %s\n", e)
		}
		for _, w := range result.Warnings {
			color.New(color.FgYellow).Fprintf(os.Stderr, "[!] %s\n", w)
		}
		if result.Valid {
			color.New(color.FgGreen).Fprintf(os.Stderr, "[+] Workflow structure looks good\n")
		}
	}

	return report.Print(result)
}
