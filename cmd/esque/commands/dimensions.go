package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/report"
	"github.com/inklab/esque/pkg/stylespace"
)

var (
	dimensionsJSON bool
	paramsJSON     bool
)

var dimensionsCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "Show the 8 style-space axes",
	Long: `Show the 8 axes of style-space with their low and high pole labels.
Use --json for the full specs including per-bucket vocabulary fragments.

Examples:
  esque dimensions
  esque dimensions --json | jq '.[].axis'`,
	RunE: runDimensions,
}

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List the axis names in canonical order",
	Long: `List the 8 axis names in their canonical order. This is the order
coordinates are serialized and compared in.`,
	RunE: runParams,
}

func init() {
	dimensionsCmd.Flags().BoolVar(&dimensionsJSON, "json", false, "Output as JSON")
	paramsCmd.Flags().BoolVar(&paramsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(dimensionsCmd)
	rootCmd.AddCommand(paramsCmd)
}

func runDimensions(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load config", err.Error(), nil)
	}
	if wantJSON(dimensionsJSON, cfg) {
		return report.WriteJSON(os.Stdout, stylespace.Dimensions())
	}
	report.Dimensions(os.Stdout, stylespace.Dimensions())
	return nil
}

func runParams(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load config", err.Error(), nil)
	}
	if wantJSON(paramsJSON, cfg) {
		return report.WriteJSON(os.Stdout, stylespace.ParameterNames())
	}
	for _, axis := range stylespace.ParameterNames() {
		printer.Println(string(axis))
	}
	return nil
}
