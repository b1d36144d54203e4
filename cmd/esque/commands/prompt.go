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

var (
	promptStyle    string
	promptBlend    []string
	promptCoords   []string
	promptModifier string
	promptJSON     bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Synthesize generation prompts from a style-space point",
	Long: `Synthesize a text or image generation prompt from a point in
style-space. Select the point with exactly one of:

  --style   a catalog style ID
  --blend   repeated STYLE_ID=WEIGHT pairs
  --coord   repeated AXIS=VALUE pairs covering all 8 axes

Examples:
  esque prompt text --style hemingway
  esque prompt image --style murakami --modifier "oil painting"
  esque prompt text --blend hemingway=0.7 --blend borges=0.3
  esque prompt text --coord interiority=0.9 --coord syntactic_density=0.2 ...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var promptTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Synthesize a text-generation prompt",
	RunE:  runPromptText,
}

var promptImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Synthesize an image-generation prompt",
	RunE:  runPromptImage,
}

func init() {
	for _, sub := range []*cobra.Command{promptTextCmd, promptImageCmd} {
		sub.Flags().StringVar(&promptStyle, "style", "", "Catalog style ID")
		sub.Flags().StringArrayVar(&promptBlend, "blend", nil, "Blend member as STYLE_ID=WEIGHT (repeatable)")
		sub.Flags().StringArrayVar(&promptCoords, "coord", nil, "Coordinate as AXIS=VALUE (repeatable, all 8 axes)")
		sub.Flags().BoolVar(&promptJSON, "json", false, "Output as JSON")
	}
	promptImageCmd.Flags().StringVar(&promptModifier, "modifier", "", "Trailing modifier (medium, mood, technique)")
	promptCmd.AddCommand(promptTextCmd)
	promptCmd.AddCommand(promptImageCmd)
	rootCmd.AddCommand(promptCmd)
}

// promptSelector builds the selector from the prompt flags.
func promptSelector() (stylespace.Selector, error) {
	sel := stylespace.Selector{StyleID: promptStyle}

	if len(promptBlend) > 0 {
		spec, err := parseBlendArgs(promptBlend)
		if err != nil {
			return stylespace.Selector{}, err
		}
		sel.Blend = spec
	}

	if len(promptCoords) > 0 {
		coord := make(stylespace.Coordinate, len(promptCoords))
		for _, arg := range promptCoords {
			axis, valueText, found := strings.Cut(arg, "=")
			if !found {
				return stylespace.Selector{}, fmt.Errorf("invalid coordinate '%s': expected AXIS=VALUE", arg)
			}
			value, err := strconv.ParseFloat(valueText, 64)
			if err != nil {
				return stylespace.Selector{}, fmt.Errorf("invalid value in '%s': %w", arg, err)
			}
			coord[stylespace.Axis(axis)] = value
		}
		sel.Custom = coord
	}

	return sel, nil
}

func runPromptText(cmd *cobra.Command, args []string) error {
	return runPrompt(func(catalog *stylespace.Catalog, sel stylespace.Selector) (*stylespace.PromptBundle, error) {
		return catalog.SynthesizeText(sel)
	})
}

func runPromptImage(cmd *cobra.Command, args []string) error {
	return runPrompt(func(catalog *stylespace.Catalog, sel stylespace.Selector) (*stylespace.PromptBundle, error) {
		return catalog.SynthesizeImage(sel, promptModifier)
	})
}

func runPrompt(synthesize func(*stylespace.Catalog, stylespace.Selector) (*stylespace.PromptBundle, error)) error {
	catalog, cfg, err := loadCatalog()
	if err != nil {
		return printer.Error("Failed to load catalog", err.Error(), nil)
	}

	sel, err := promptSelector()
	if err != nil {
		return printer.Error("Invalid selection", err.Error(), []string{
			"Use exactly one of --style, --blend, or --coord",
		})
	}

	bundle, err := synthesize(catalog, sel)
	if err != nil {
		switch {
		case stylespace.IsNotFound(err):
			return printer.Error(
				fmt.Sprintf("Unknown style: %s", err.Error()),
				"The selected style is not in the catalog.",
				[]string{"Run 'esque list' to see available styles"},
			)
		case stylespace.IsValidation(err):
			return printer.Error("Invalid selection", err.Error(), []string{
				"Use exactly one of --style, --blend, or --coord",
				"Custom coordinates must cover all 8 axes with values in [0, 1]",
			})
		}
		return printer.Error("Failed to synthesize prompt", err.Error(), nil)
	}

	if wantJSON(promptJSON, cfg) {
		return report.WriteJSON(os.Stdout, bundle)
	}
	report.Prompt(os.Stdout, bundle)
	return nil
}
