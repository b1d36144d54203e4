package stylespace

import (
	"fmt"
	"strings"
)

// Fragment is one axis's contribution to a synthesized prompt.
type Fragment struct {
	Axis   Axis
	Value  float64
	Bucket Bucket
	Depth  float64
	Text   string
}

// PromptBundle is the full output of prompt synthesis: the composed prompt
// plus the structured pieces it was assembled from, so callers can render
// or recombine them.
type PromptBundle struct {
	Modality       Modality
	Source         string
	Coordinate     Coordinate
	SignatureMoves []string
	Fragments      []Fragment

	Prompt string

	// Text-modality constraints, populated only when the selector resolves
	// to a catalog entry.
	Register        string
	ParagraphRhythm string
	ForbiddenWords  []string

	// Image-modality overrides, same condition.
	Keywords           []string
	ColorPalette       []string
	CompositionalRules []string
}

const (
	textDelimiter  = " "
	imageDelimiter = ", "
)

// SynthesizeText builds a text-generation prompt for the selected point.
// Catalog entries contribute their register, rhythm, and forbidden-word
// constraints; blends and custom coordinates get fragments only.
func (c *Catalog) SynthesizeText(sel Selector) (*PromptBundle, error) {
	res, err := c.Resolve(sel)
	if err != nil {
		return nil, err
	}
	bundle := &PromptBundle{
		Modality:       ModalityText,
		Source:         res.Source,
		Coordinate:     res.Coordinate,
		SignatureMoves: res.SignatureMoves,
		Fragments:      fragmentsFor(res.Coordinate, ModalityText),
	}
	if res.Entry != nil && res.Entry.Text != nil {
		bundle.Register = res.Entry.Text.Register
		bundle.ParagraphRhythm = res.Entry.Text.ParagraphRhythm
		bundle.ForbiddenWords = res.Entry.Text.Forbidden
	}

	var b strings.Builder
	if bundle.Source != "" {
		fmt.Fprintf(&b, "[Style: %s]", bundle.Source)
	}
	if len(bundle.SignatureMoves) > 0 {
		if b.Len() > 0 {
			b.WriteString(textDelimiter)
		}
		fmt.Fprintf(&b, "Key techniques: %s.", strings.Join(bundle.SignatureMoves, "; "))
	}
	for _, f := range bundle.Fragments {
		if b.Len() > 0 {
			b.WriteString(textDelimiter)
		}
		b.WriteString(f.Text)
	}
	if bundle.Register != "" {
		fmt.Fprintf(&b, "%sRegister: %s.", textDelimiter, bundle.Register)
	}
	if bundle.ParagraphRhythm != "" {
		fmt.Fprintf(&b, "%sParagraph rhythm: %s.", textDelimiter, bundle.ParagraphRhythm)
	}
	if len(bundle.ForbiddenWords) > 0 {
		fmt.Fprintf(&b, "%sAvoid these words: %s.", textDelimiter, strings.Join(bundle.ForbiddenWords, ", "))
	}
	bundle.Prompt = b.String()
	return bundle, nil
}

// SynthesizeImage builds an image-generation prompt for the selected point.
// An optional modifier (medium, mood, technique) is appended as the final
// term. Catalog entries contribute their keyword, palette, and composition
// overrides.
func (c *Catalog) SynthesizeImage(sel Selector, modifier string) (*PromptBundle, error) {
	res, err := c.Resolve(sel)
	if err != nil {
		return nil, err
	}
	bundle := &PromptBundle{
		Modality:       ModalityImage,
		Source:         res.Source,
		Coordinate:     res.Coordinate,
		SignatureMoves: res.SignatureMoves,
		Fragments:      fragmentsFor(res.Coordinate, ModalityImage),
	}
	if res.Entry != nil && res.Entry.Image != nil {
		bundle.Keywords = res.Entry.Image.Keywords
		bundle.ColorPalette = res.Entry.Image.ColorPalette
		bundle.CompositionalRules = res.Entry.Image.CompositionalRules
	}

	var parts []string
	if bundle.Source != "" {
		parts = append(parts, "style of "+bundle.Source)
	}
	parts = append(parts, bundle.Keywords...)
	if len(bundle.ColorPalette) > 0 {
		parts = append(parts, "color palette: "+strings.Join(bundle.ColorPalette, ", "))
	}
	for _, f := range bundle.Fragments {
		parts = append(parts, f.Text)
	}
	if modifier != "" {
		parts = append(parts, modifier)
	}
	bundle.Prompt = strings.Join(parts, imageDelimiter)
	return bundle, nil
}

// fragmentsFor maps each axis value to its bucket's vocabulary fragment,
// in canonical axis order.
func fragmentsFor(coord Coordinate, m Modality) []Fragment {
	fragments := make([]Fragment, 0, NumAxes)
	for i := range dimensionTable {
		d := &dimensionTable[i]
		v := coord[d.Axis]
		bucket := BucketFor(v)
		fragments = append(fragments, Fragment{
			Axis:   d.Axis,
			Value:  v,
			Bucket: bucket,
			Depth:  bucketDepth(v),
			Text:   d.Vocabulary(m).ForBucket(bucket),
		})
	}
	return fragments
}
