package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/report"
	"github.com/inklab/esque/pkg/stylespace"
)

var profileJSON bool

var profileCmd = &cobra.Command{
	Use:   "profile STYLE_ID",
	Short: "Show the full profile of one catalog style",
	Long: `Show everything the catalog knows about one style: its coordinates with
bucket classification, signature moves, and text/image vocabularies.

Examples:
  esque profile lovecraft
  esque profile kafka --json`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	catalog, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), nil)
	}

	entry, err := catalog.Get(args[0])
	if err != nil {
		if stylespace.IsNotFound(err) {
			return printer.Error(
				fmt.Sprintf("Unknown style '%s'", args[0]),
				"The style is not in the catalog.",
				[]string{"Run 'esque list' to see available styles"},
			)
		}
		return printer.Error("Failed to fetch style", err.Error(), nil)
	}

	if wantJSON(profileJSON, cfg) {
		return report.WriteJSON(os.Stdout, entry)
	}
	report.Profile(os.Stdout, entry)
	if entry.Text == nil || entry.Image == nil {
		printer.Warning("style '%s' has no vocabulary overrides; prompts will use the generic axis fragments only\n", entry.ID)
	}
	return nil
}
