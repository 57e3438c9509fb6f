package cli

import (
	"os"

	"github.com/sitthaveet/cre-ts-skill/internal/analyzer"
	"github.com/sitthaveet/cre-ts-skill/internal/report"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [path]",
		Short: "Heuristically check workflow source against platform limits",
		Long: `Analyze scans TypeScript files under the given path (default ".") for
indicators of exceeding platform quotas: HTTP calls, chain reads,
serialization, loops, logging and secret access. The check is purely
textual and advisory; it does not parse or execute the code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	a, err := analyzer.NewAnalyzer(verbose, configPath)
	if err != nil {
		return emitFailure("%v", err)
	}

	result, err := a.Analyze(path)
	if err != nil {
		return emitFailure("%v", err)
	}

	if verbose {
		color.New(color.FgCyan).Fprintf(os.Stderr, "[*] Analyzed %d TypeScript files under %s\n", result.FilesAnalyzed, path)
		for _, w := range result.Warnings {
			color.New(color.FgYellow).Fprintf(os.Stderr, "[!] %s\n", w)
		}
	}

	return report.Print(result)
}
