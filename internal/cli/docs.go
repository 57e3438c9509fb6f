package cli

import (
	"github.com/sitthaveet/cre-ts-skill/internal/docs"
	"github.com/sitthaveet/cre-ts-skill/internal/report"

	"github.com/spf13/cobra"
)

func newDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Work with platform reference documentation",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "fetch",
		Short: "Download the platform documentation bundle for offline use",
		Args:  cobra.NoArgs,
		RunE:  runDocsFetch,
	})

	return cmd
}

func runDocsFetch(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	n, err := docs.Fetch(docs.DefaultURL, docs.DefaultPath, verbose)
	if err != nil {
		_ = report.Print(report.Fetch{Success: false, URL: docs.DefaultURL, Error: err.Error()})
		return err
	}

	return report.Print(report.Fetch{
		Success: true,
		URL:     docs.DefaultURL,
		Path:    docs.DefaultPath,
		Bytes:   n,
	})
}
