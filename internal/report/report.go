// Package report renders engine results for terminal consumption: fixed-width
// tables for humans, JSON for pipelines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/inklab/esque/pkg/stylespace"
)

// WriteJSON writes any result as pretty-printed JSON to the provided writer.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

// EntryTable writes catalog entries as a formatted table to the provided
// writer. Columns: ID, NAME, ORIGIN, and the coordinate values in canonical
// axis order. Returns the number of entries written.
func EntryTable(w io.Writer, entries []stylespace.StyleEntry) int {
	if len(entries) == 0 {
		fmt.Fprintf(w, "No styles in catalog\n")
		return 0
	}

	fmt.Fprintf(w, "%-12s %-18s %-22s %s\n", "ID", "NAME", "ORIGIN", "COORDINATE")
	fmt.Fprintf(w, "%-12s %-18s %-22s %s\n",
		"------------", "------------------", "----------------------", "----------------------------------------")

	for _, e := range entries {
		fmt.Fprintf(w, "%-12s %-18s %-22s %s\n",
			e.ID, e.DisplayName, e.Origin, formatCoordinate(e.Coordinate))
	}

	countMsg := "style"
	if len(entries) != 1 {
		countMsg = "styles"
	}
	fmt.Fprintf(w, "\n%d %s\n", len(entries), countMsg)

	return len(entries)
}

// Profile writes the full detail view of one catalog entry.
func Profile(w io.Writer, e stylespace.StyleEntry) {
	fmt.Fprintf(w, "%s (%s)\n", e.DisplayName, e.Origin)
	fmt.Fprintf(w, "id: %s\n\n", e.ID)

	fmt.Fprintf(w, "Coordinates:\n")
	for _, axis := range stylespace.ParameterNames() {
		fmt.Fprintf(w, "  %-22s %.2f  [%s]\n", axis, e.Coordinate[axis], stylespace.BucketFor(e.Coordinate[axis]))
	}

	if len(e.SignatureMoves) > 0 {
		fmt.Fprintf(w, "\nSignature moves:\n")
		for _, m := range e.SignatureMoves {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}

	if e.Text != nil {
		fmt.Fprintf(w, "\nText vocabulary:\n")
		fmt.Fprintf(w, "  %-22s %s\n", "register:", e.Text.Register)
		fmt.Fprintf(w, "  %-22s %s\n", "paragraph rhythm:", e.Text.ParagraphRhythm)
		fmt.Fprintf(w, "  %-22s %s\n", "forbidden:", strings.Join(e.Text.Forbidden, ", "))
	}

	if e.Image != nil {
		fmt.Fprintf(w, "\nImage vocabulary:\n")
		fmt.Fprintf(w, "  %-22s %s\n", "keywords:", strings.Join(e.Image.Keywords, ", "))
		fmt.Fprintf(w, "  %-22s %s\n", "palette:", strings.Join(e.Image.ColorPalette, ", "))
	}
}

// DistanceTable writes a distance report with its per-axis breakdown.
func DistanceTable(w io.Writer, label1, label2 string, r *stylespace.DistanceReport) {
	fmt.Fprintf(w, "Distance between %s and %s:\n\n", label1, label2)
	fmt.Fprintf(w, "%-22s %-8s %-8s %s\n", "AXIS", shortLabel(label1), shortLabel(label2), "GAP")
	fmt.Fprintf(w, "%-22s %-8s %-8s %s\n", "----------------------", "--------", "--------", "--------")
	for _, g := range r.PerAxis {
		marker := ""
		if g.Axis == r.MaxGapAxis {
			marker = "  <- widest gap"
		}
		fmt.Fprintf(w, "%-22s %-8.2f %-8.2f %.2f%s\n", g.Axis, g.A, g.B, g.Gap, marker)
	}
	fmt.Fprintf(w, "\nEuclidean distance:   %.4f\n", r.Distance)
	fmt.Fprintf(w, "Normalized (0-1):     %.4f\n", r.Normalized)
}

// Blend writes a blend result: the label, the centroid, the nearest
// neighbor, and the merged signature moves.
func Blend(w io.Writer, r *stylespace.BlendResult) {
	fmt.Fprintf(w, "Blend: %s\n\n", r.Display)
	fmt.Fprintf(w, "Centroid:\n")
	for _, axis := range stylespace.ParameterNames() {
		fmt.Fprintf(w, "  %-22s %.3f  [%s]\n", axis, r.Coordinate[axis], stylespace.BucketFor(r.Coordinate[axis]))
	}
	fmt.Fprintf(w, "\nNearest catalog style: %s (%s) at distance %.4f\n",
		r.Nearest.DisplayName, r.Nearest.ID, r.Nearest.Distance)
	if len(r.SignatureMoves) > 0 {
		fmt.Fprintf(w, "\nMerged signature moves:\n")
		for _, m := range r.SignatureMoves {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}
}

// Prompt writes a synthesized prompt bundle: the composed prompt first,
// then the per-axis fragments that built it.
func Prompt(w io.Writer, b *stylespace.PromptBundle) {
	fmt.Fprintf(w, "%s\n", b.Prompt)
	fmt.Fprintf(w, "\nFragments (%s):\n", b.Modality)
	for _, f := range b.Fragments {
		fmt.Fprintf(w, "  %-22s %.2f [%s] %s\n", f.Axis, f.Value, f.Bucket, f.Text)
	}
}

// Dimensions writes the axis reference table.
func Dimensions(w io.Writer, dims []stylespace.Dimension) {
	fmt.Fprintf(w, "%-22s %-28s %s\n", "AXIS", "LOW", "HIGH")
	fmt.Fprintf(w, "%-22s %-28s %s\n",
		"----------------------", "----------------------------", "----------------------------")
	for _, d := range dims {
		fmt.Fprintf(w, "%-22s %-28s %s\n", d.Axis, d.LowLabel, d.HighLabel)
	}
}

// formatCoordinate renders a coordinate in canonical axis order as a
// compact bracketed vector.
func formatCoordinate(c stylespace.Coordinate) string {
	parts := make([]string, 0, stylespace.NumAxes)
	for _, v := range c.Values() {
		parts = append(parts, fmt.Sprintf("%.2f", v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// shortLabel truncates a style label to fit the fixed column width.
func shortLabel(label string) string {
	if len(label) > 8 {
		return label[:8]
	}
	return label
}
