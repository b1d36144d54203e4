package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/report"
	"github.com/inklab/esque/pkg/stylespace"
)

var blendJSON bool

var blendCmd = &cobra.Command{
	Use:   "blend STYLE_ID=WEIGHT [STYLE_ID=WEIGHT...]",
	Short: "Blend catalog styles into a weighted hybrid",
	Long: `Compute the weighted centroid of two or more catalog styles. Weights
need not sum to 1; they are normalized before interpolation. The result
includes the blended coordinate, the nearest catalog style to it, and the
merged signature moves of the contributors.

Examples:
  esque blend hemingway=0.7 borges=0.3
  esque blend kafka=2 didion=1 lispector=1 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBlend,
}

func init() {
	blendCmd.Flags().BoolVar(&blendJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(blendCmd)
}

// parseBlendArgs turns ID=WEIGHT arguments into a blend spec in argument
// order. A bare ID with no '=' gets weight 1.
func parseBlendArgs(args []string) (stylespace.BlendSpec, error) {
	spec := make(stylespace.BlendSpec, 0, len(args))
	for _, arg := range args {
		id, weightText, found := strings.Cut(arg, "=")
		if !found {
			spec = append(spec, stylespace.BlendTerm{ID: id, Weight: 1})
			continue
		}
		weight, err := strconv.ParseFloat(weightText, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight in '%s': %w", arg, err)
		}
		spec = append(spec, stylespace.BlendTerm{ID: id, Weight: weight})
	}
	return spec, nil
}

func runBlend(cmd *cobra.Command, args []string) error {
	catalog, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), nil)
	}

	spec, err := parseBlendArgs(args)
	if err != nil {
		return printer.Error("Invalid blend argument", err.Error(), []string{
			"Use STYLE_ID=WEIGHT pairs, e.g. 'esque blend hemingway=0.7 borges=0.3'",
		})
	}

	result, err := catalog.Blend(spec)
	if err != nil {
		switch {
		case stylespace.IsNotFound(err):
			return printer.Error(
				fmt.Sprintf("Unknown style: %s", err.Error()),
				"Every blend member must exist in the catalog.",
				[]string{"Run 'esque list' to see available styles"},
			)
		case stylespace.IsValidation(err):
			return printer.Error("Invalid blend", err.Error(), []string{
				"Weights must be non-negative and sum to a positive value",
			})
		}
		return printer.Error("Failed to blend", err.Error(), nil)
	}

	if wantJSON(blendJSON, cfg) {
		return report.WriteJSON(os.Stdout, result)
	}
	report.Blend(os.Stdout, result)
	return nil
}
