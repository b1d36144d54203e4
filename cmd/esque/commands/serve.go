package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/printer"
	"github.com/inklab/esque/internal/tool"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine over line-delimited JSON on stdin/stdout",
	Long: `Run the engine as a long-lived process speaking line-delimited JSON:
one request object per input line, one response envelope per output line.

Request shape:
  {"id": "optional", "tool": "compute-distance", "params": {"id1": "kafka", "id2": "borges"}}

Run 'esque info' to list the available tools.

Example:
  echo '{"tool": "server-info"}' | esque serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	catalog, _, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), nil)
	}

	registry := tool.NewRegistry(catalog, version)
	if err := registry.Serve(os.Stdin, os.Stdout); err != nil {
		return printer.Error("Serve loop failed", err.Error(), nil)
	}
	return nil
}
