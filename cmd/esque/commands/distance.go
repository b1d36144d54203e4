package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/report"
	"github.com/inklab/esque/pkg/stylespace"
)

var distanceJSON bool

var distanceCmd = &cobra.Command{
	Use:   "distance STYLE_ID STYLE_ID",
	Short: "Measure the distance between two catalog styles",
	Long: `Compute the Euclidean distance between two catalog styles in the
8-dimensional style-space, with a per-axis breakdown flagging the axis
where the styles diverge most.

Examples:
  esque distance hemingway lovecraft
  esque distance kafka borges --json`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func init() {
	distanceCmd.Flags().BoolVar(&distanceJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(distanceCmd)
}

func runDistance(cmd *cobra.Command, args []string) error {
	catalog, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), nil)
	}

	result, err := catalog.Distance(args[0], args[1])
	if err != nil {
		if stylespace.IsNotFound(err) {
			return printer.Error(
				fmt.Sprintf("Unknown style: %s", err.Error()),
				"Both styles must exist in the catalog.",
				[]string{"Run 'esque list' to see available styles"},
			)
		}
		return printer.Error("Failed to compute distance", err.Error(), nil)
	}

	if wantJSON(distanceJSON, cfg) {
		return report.WriteJSON(os.Stdout, result)
	}
	report.DistanceTable(os.Stdout, args[0], args[1], result)
	return nil
}
