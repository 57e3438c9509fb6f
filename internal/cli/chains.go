package cli

import (
	"github.com/sitthaveet/cre-ts-skill/internal/chains"
	"github.com/sitthaveet/cre-ts-skill/internal/report"

	"github.com/spf13/cobra"
)

type chainList struct {
	Success bool           `json:"success"`
	Chains  []chains.Chain `json:"chains"`
}

type chainMatch struct {
	Success bool `json:"success"`
	chains.Chain
}

func newChainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chains [name]",
		Short: "Look up chain selector identifiers",
		Long: `Chains prints the compiled-in chain selector table, or, given a display
name or selector name, the single matching entry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runChains,
	}
}

func runChains(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return report.Print(chainList{Success: true, Chains: chains.All()})
	}

	chain, ok := chains.Lookup(args[0])
	if !ok {
		return emitFailure("unknown chain: %s", args[0])
	}
	return report.Print(chainMatch{Success: true, Chain: chain})
}
