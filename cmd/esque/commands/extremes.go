package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/report"
)

var extremesJSON bool

var extremesCmd = &cobra.Command{
	Use:   "extremes",
	Short: "Find the two most distant styles in the catalog",
	Long: `Scan every pair of catalog styles and report the pair with the maximum
distance, with the full per-axis breakdown.

Examples:
  esque extremes
  esque extremes --json`,
	RunE: runExtremes,
}

func init() {
	extremesCmd.Flags().BoolVar(&extremesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(extremesCmd)
}

func runExtremes(cmd *cobra.Command, args []string) error {
	catalog, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), nil)
	}

	result, err := catalog.Extremes()
	if err != nil {
		return printer.Error("Failed to find extremes", err.Error(), []string{
			"The catalog needs at least two styles",
		})
	}

	if wantJSON(extremesJSON, cfg) {
		return report.WriteJSON(os.Stdout, result)
	}
	fmt.Fprintf(os.Stdout, "Most distant pair: %s and %s\n\n", result.A.DisplayName, result.B.DisplayName)
	report.DistanceTable(os.Stdout, result.A.ID, result.B.ID, result.Report)
	return nil
}
