package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/report"
	"github.com/inklab/esque/internal/tool"
	"github.com/inklab/esque/pkg/stylespace"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show engine information",
	Long: `Show the engine version, catalog size, axis count, and the operations
available over the serve protocol.`,
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	catalog, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), nil)
	}

	registry := tool.NewRegistry(catalog, version)
	resp := registry.Execute(tool.Request{Tool: "server-info"})

	if wantJSON(infoJSON, cfg) {
		return report.WriteJSON(os.Stdout, resp.Result)
	}

	printer.Heading("esque")
	printer.Field("version", "%s", rootCmd.Version)
	printer.Field("styles", "%d", catalog.Len())
	printer.Field("axes", "%d", stylespace.NumAxes)
	printer.Field("tools", "%d", len(registry.Tools()))
	for _, name := range registry.Tools() {
		printer.Printf("    %s\n", name)
	}
	return nil
}
