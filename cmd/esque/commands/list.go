package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/report"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all styles in the catalog",
	Long: `List every style in the effective catalog: the 11 built-in archetypes
plus any entries declared in esque.yml.

Examples:
  # Human-readable table
  esque list

  # JSON for piping to jq
  esque list --json | jq '.[].id'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	catalog, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), []string{
			"Check that esque.yml is valid YAML",
			"Run without --config to use the built-in catalog only",
		})
	}

	if wantJSON(listJSON, cfg) {
		return report.WriteJSON(os.Stdout, catalog.Entries())
	}
	report.EntryTable(os.Stdout, catalog.Entries())
	return nil
}
