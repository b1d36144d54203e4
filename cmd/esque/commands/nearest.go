package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/report"
	"github.com/inklab/esque/pkg/stylespace"
)

var nearestJSON bool

var nearestCmd = &cobra.Command{
	Use:   "nearest STYLE_ID",
	Short: "Find a style's nearest catalog neighbor",
	Long: `Find the catalog style closest to the given one, excluding itself.

Examples:
  esque nearest didion
  esque nearest kafka --json`,
	Args: cobra.ExactArgs(1),
	RunE: runNearest,
}

func init() {
	nearestCmd.Flags().BoolVar(&nearestJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(nearestCmd)
}

func runNearest(cmd *cobra.Command, args []string) error {
	catalog, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), nil)
	}

	nearest, err := catalog.NearestTo(args[0])
	if err != nil {
		if stylespace.IsNotFound(err) {
			return printer.Error(
				fmt.Sprintf("Unknown style '%s'", args[0]),
				"The style is not in the catalog.",
				[]string{"Run 'esque list' to see available styles"},
			)
		}
		return printer.Error("Failed to find nearest neighbor", err.Error(), nil)
	}

	if wantJSON(nearestJSON, cfg) {
		return report.WriteJSON(os.Stdout, nearest)
	}
	printer.Printf("Nearest to %s: %s (%s) at distance %.4f\n",
		args[0], nearest.DisplayName, nearest.ID, nearest.Distance)
	return nil
}
