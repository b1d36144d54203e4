package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inklab/esque/internal/config"
	"github.com/inklab/esque/pkg/stylespace"
)

var (
	version string
	commit  string
	date    string
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "esque",
	Short: "Esque - deterministic writing-style coordinate engine",
	Long: `Esque maps writing styles onto an 8-dimensional coordinate space and
gives you deterministic operations over it: measure the distance between
two styles, blend several into a weighted hybrid, find a point's nearest
catalog neighbor, and synthesize text or image generation prompts from
any coordinate.

The built-in catalog carries 11 curated author-style archetypes. Add your
own entries through an esque.yml configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath,
		"Path to esque.yml (optional; built-in catalog used when absent)")
}

// loadCatalog builds the effective catalog from the optional config file.
func loadCatalog() (*stylespace.Catalog, *config.EsqueConfig, error) {
	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, nil, err
	}
	return catalog, cfg, nil
}

// wantJSON decides the output format: an explicit --json flag wins, then the
// config file's output default.
func wantJSON(flag bool, cfg *config.EsqueConfig) bool {
	if flag {
		return true
	}
	return cfg != nil && cfg.Output != nil && cfg.Output.Format == "json"
}
