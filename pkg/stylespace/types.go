package stylespace

import (
	"fmt"
	"sort"
)

// Axis identifies one of the 8 fixed dimensions of style-space.
type Axis string

const (
	// AxisSyntacticDensity measures structural load per sentence - clause
	// nesting depth and subordinate-to-main clause ratio.
	AxisSyntacticDensity Axis = "syntactic_density"

	// AxisSensoryConcreteness measures the ratio of concrete sensory
	// language to abstract conceptual language.
	AxisSensoryConcreteness Axis = "sensory_concreteness"

	// AxisOrnamentalRegister measures decoration density - adjective
	// frequency, figurative language, lexical rarity.
	AxisOrnamentalRegister Axis = "ornamental_register"

	// AxisTensionVisibility measures whether tension lives on the surface
	// or stays submerged.
	AxisTensionVisibility Axis = "tension_visibility"

	// AxisTensionTemporality measures whether tension accumulates slowly
	// or arrives as rupture.
	AxisTensionTemporality Axis = "tension_temporality"

	// AxisRealityStability measures how trustworthy the depicted world is.
	AxisRealityStability Axis = "reality_stability"

	// AxisInteriority measures the degree of access to inner experience.
	AxisInteriority Axis = "interiority"

	// AxisTemporalMode measures the text's relationship to time, from
	// episodic eternal present to cyclical/exhaustive structures.
	AxisTemporalMode Axis = "temporal_mode"
)

// axisOrder is the canonical declaration order of the 8 axes. Serialization,
// prompt composition, and external numeric-vector consumers all follow this
// order, and tie-breaks resolve to the lowest index.
var axisOrder = []Axis{
	AxisSyntacticDensity,
	AxisSensoryConcreteness,
	AxisOrnamentalRegister,
	AxisTensionVisibility,
	AxisTensionTemporality,
	AxisRealityStability,
	AxisInteriority,
	AxisTemporalMode,
}

// NumAxes is the dimensionality of style-space.
const NumAxes = 8

// ParameterNames returns the 8 axis names in canonical declaration order.
// The result is a fresh copy; callers may modify it freely.
func ParameterNames() []Axis {
	names := make([]Axis, NumAxes)
	copy(names, axisOrder)
	return names
}

// Validate checks if the Axis is one of the 8 known dimensions.
func (a Axis) Validate() error {
	switch a {
	case AxisSyntacticDensity, AxisSensoryConcreteness, AxisOrnamentalRegister,
		AxisTensionVisibility, AxisTensionTemporality, AxisRealityStability,
		AxisInteriority, AxisTemporalMode:
		return nil
	default:
		return fmt.Errorf("unknown axis: %q", a)
	}
}

// Bucket is the discretization of a single axis value for vocabulary lookup.
type Bucket string

const (
	// BucketLow covers values below 1/3.
	BucketLow Bucket = "low"

	// BucketMid covers values in [1/3, 2/3]. Both boundaries belong to
	// the mid bucket.
	BucketMid Bucket = "mid"

	// BucketHigh covers values above 2/3.
	BucketHigh Bucket = "high"
)

// Modality selects which downstream consumer a prompt bundle targets.
type Modality string

const (
	// ModalityText targets text-generation directives.
	ModalityText Modality = "text"

	// ModalityImage targets image-generation directives.
	ModalityImage Modality = "image"
)

// Validate checks if the Modality is a valid enum value.
func (m Modality) Validate() error {
	switch m {
	case ModalityText, ModalityImage:
		return nil
	default:
		return fmt.Errorf("unknown modality: %q", m)
	}
}

// Coordinate is a point in style-space: a value in [0, 1] for each of the
// 8 axes. A valid Coordinate has exactly 8 entries, one per known axis.
type Coordinate map[Axis]float64

// Validate checks that the Coordinate has exactly one in-range value per
// axis. Missing or out-of-range entries fail; nothing is clamped.
func (c Coordinate) Validate() error {
	if len(c) != NumAxes {
		return validationf("coordinate must have exactly %d values, got %d", NumAxes, len(c))
	}
	for _, axis := range axisOrder {
		v, ok := c[axis]
		if !ok {
			return validationf("coordinate missing axis %q", axis)
		}
		if v < 0.0 || v > 1.0 {
			return validationf("axis %q value %g outside [0, 1]", axis, v)
		}
	}
	return nil
}

// Clone returns an independent copy of the Coordinate.
func (c Coordinate) Clone() Coordinate {
	out := make(Coordinate, len(c))
	for axis, v := range c {
		out[axis] = v
	}
	return out
}

// Values returns the coordinate's values in canonical axis order, for
// external trajectory/animation consumers that take a plain vector.
func (c Coordinate) Values() []float64 {
	out := make([]float64, 0, NumAxes)
	for _, axis := range axisOrder {
		out = append(out, c[axis])
	}
	return out
}

// BucketVocabulary holds one vocabulary fragment per bucket for a single
// axis and modality.
type BucketVocabulary struct {
	Low  string `json:"low"`
	Mid  string `json:"mid"`
	High string `json:"high"`
}

// ForBucket returns the fragment for the given bucket.
func (bv BucketVocabulary) ForBucket(b Bucket) string {
	switch b {
	case BucketLow:
		return bv.Low
	case BucketHigh:
		return bv.High
	default:
		return bv.Mid
	}
}

// Dimension is the full specification of one axis: structural description
// plus the text and image vocabulary mappings used by the synthesizer.
type Dimension struct {
	Axis        Axis             `json:"axis"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	LowLabel    string           `json:"low_label"`
	HighLabel   string           `json:"high_label"`
	Text        BucketVocabulary `json:"text"`
	Image       BucketVocabulary `json:"image"`
}

// Vocabulary returns the bucket vocabulary for the given modality.
func (d Dimension) Vocabulary(m Modality) BucketVocabulary {
	if m == ModalityImage {
		return d.Image
	}
	return d.Text
}

// TextVocabulary holds a catalog entry's text-modality overrides that
// supplement the generic per-axis fragments.
type TextVocabulary struct {
	Conjunctions     []string `json:"conjunctions" yaml:"conjunctions"`
	SentenceStarters []string `json:"sentence_starters" yaml:"sentence_starters"`
	Forbidden        []string `json:"forbidden" yaml:"forbidden"`
	Register         string   `json:"register" yaml:"register"`
	ParagraphRhythm  string   `json:"paragraph_rhythm" yaml:"paragraph_rhythm"`
}

// ImageVocabulary holds a catalog entry's image-modality overrides.
type ImageVocabulary struct {
	Keywords           []string `json:"keywords" yaml:"keywords"`
	ColorPalette       []string `json:"color_palette" yaml:"color_palette"`
	CompositionalRules []string `json:"compositional_rules" yaml:"compositional_rules"`
}

// StyleEntry is one catalog member: a named archetype bound to a point in
// style-space plus its signature moves and vocabulary overrides.
type StyleEntry struct {
	ID             string           `json:"id" yaml:"id"`
	DisplayName    string           `json:"display_name" yaml:"display_name"`
	Origin         string           `json:"origin" yaml:"origin"`
	Coordinate     Coordinate       `json:"coordinate" yaml:"coordinate"`
	SignatureMoves []string         `json:"signature_moves" yaml:"signature_moves"`
	Text           *TextVocabulary  `json:"text_vocabulary,omitempty" yaml:"text_vocabulary,omitempty"`
	Image          *ImageVocabulary `json:"image_vocabulary,omitempty" yaml:"image_vocabulary,omitempty"`
}

// Validate checks if the StyleEntry has valid field values.
func (e *StyleEntry) Validate() error {
	if e.ID == "" {
		return validationf("style entry ID cannot be empty")
	}
	if e.DisplayName == "" {
		return validationf("style entry %q: display name cannot be empty", e.ID)
	}
	if err := e.Coordinate.Validate(); err != nil {
		return fmt.Errorf("style entry %q: %w", e.ID, err)
	}
	return nil
}

// BlendTerm is one contributing entry in a blend: a catalog identifier and
// its non-negative weight.
type BlendTerm struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// BlendSpec maps catalog identifiers to blend weights. Declaration order is
// significant: signature moves merge by iterating terms in this order.
// Weights need not pre-sum to 1; they are normalized before use.
type BlendSpec []BlendTerm

// Validate checks the structural invariants of the spec: at least one term,
// no negative weights, no duplicate identifiers, positive total weight.
// Identifier resolution is the catalog's concern, not the spec's.
func (s BlendSpec) Validate() error {
	if len(s) == 0 {
		return validationf("blend spec must contain at least one style")
	}
	seen := make(map[string]bool, len(s))
	total := 0.0
	for _, term := range s {
		if term.ID == "" {
			return validationf("blend spec contains an empty style ID")
		}
		if seen[term.ID] {
			return validationf("blend spec lists style %q more than once", term.ID)
		}
		seen[term.ID] = true
		if term.Weight < 0 {
			return validationf("blend weight for %q is negative", term.ID)
		}
		total += term.Weight
	}
	if total <= 0 {
		return validationf("blend weights must sum to a positive value")
	}
	return nil
}

// normalized returns the spec with weights scaled to sum to 1, preserving
// declaration order. Validate must have passed.
func (s BlendSpec) normalized() BlendSpec {
	total := 0.0
	for _, term := range s {
		total += term.Weight
	}
	out := make(BlendSpec, len(s))
	for i, term := range s {
		out[i] = BlendTerm{ID: term.ID, Weight: term.Weight / total}
	}
	return out
}

// NearestEntry identifies the closest catalog member to some point.
type NearestEntry struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Distance    float64 `json:"distance"`
}

// BlendResult is the outcome of a weighted blend. It is derived per call
// and owned solely by the caller; nothing in it aliases catalog state.
type BlendResult struct {
	// Spec holds the normalized weights actually applied, in the blend
	// spec's declaration order.
	Spec BlendSpec `json:"spec"`

	// Display is a human-readable blend label, heaviest contributor first,
	// e.g. "70% Hemingway-esque / 30% Borgesian".
	Display string `json:"display"`

	// Coordinate is the weighted centroid of the contributing points.
	Coordinate Coordinate `json:"coordinate"`

	// Nearest is the closest catalog entry to the blended point.
	Nearest NearestEntry `json:"nearest"`

	// SignatureMoves is the order-stable deduplicated union of the
	// contributing entries' signature moves.
	SignatureMoves []string `json:"signature_moves"`
}

// AxisGap is the per-axis component of a distance report.
type AxisGap struct {
	Axis Axis    `json:"axis"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	Gap  float64 `json:"gap"` // absolute difference |a-b|
}

// DistanceReport is the outcome of a distance computation: the scalar
// Euclidean distance plus a per-axis breakdown in declaration order.
type DistanceReport struct {
	Distance   float64 `json:"distance"`
	Normalized float64 `json:"normalized_distance"` // Distance / sqrt(8)

	// PerAxis holds one gap per axis in declaration order.
	PerAxis []AxisGap `json:"per_axis"`

	// MaxGapAxis is the single axis with the largest absolute difference.
	// Ties resolve to the lowest declaration-order index.
	MaxGapAxis Axis    `json:"max_gap_axis"`
	MaxGap     float64 `json:"max_gap"`
}

// sortTermsByWeight returns the terms ordered heaviest first, with ties
// broken by identifier so the display label is reproducible.
func sortTermsByWeight(terms BlendSpec) BlendSpec {
	out := make(BlendSpec, len(terms))
	copy(out, terms)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].ID < out[j].ID
	})
	return out
}
