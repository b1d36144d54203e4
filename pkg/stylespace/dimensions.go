package stylespace

// The dimension table is the ground truth for vocabulary synthesis: one
// fragment per (axis, bucket, modality). Fragments are fixed strings, not
// runtime templates, so synthesis stays deterministic and testable.

var dimensionTable = []Dimension{
	{
		Axis:        AxisSyntacticDensity,
		Name:        "Syntactic Density",
		Description: "Structural load per sentence - clause nesting depth, ratio of subordinate to main clauses.",
		LowLabel:    "paratactic / flat",
		HighLabel:   "hypotactic / deeply nested",
		Text: BucketVocabulary{
			Low:  "Simple declarative sentences. One main clause. Coordinating conjunctions only.",
			Mid:  "Balanced sentence architecture. Mix simple and complex structures. Periodic sentences permitted.",
			High: "Deeply nested subordination. Sentences carry multiple embedded qualifications. Delay main verb. Exhaustive clause stacking.",
		},
		Image: BucketVocabulary{
			Low:  "Minimal layering. Single visual plane. Clean negative space. Figure isolated against ground.",
			Mid:  "Three distinct depth planes. Foreground, subject, background clearly articulated.",
			High: "Dense visual layering. Multiple overlapping planes. Nested frames-within-frames. Baroque spatial depth.",
		},
	},
	{
		Axis:        AxisSensoryConcreteness,
		Name:        "Sensory Concreteness",
		Description: "Ratio of concrete sensory nouns/verbs to abstract conceptual language.",
		LowLabel:    "abstract / conceptual",
		HighLabel:   "concrete / sensory",
		Text: BucketVocabulary{
			Low:  "Latinate abstract vocabulary. Ideas, categories, logical relations. Nouns you cannot photograph.",
			Mid:  "Ground abstractions in occasional concrete detail. Alternate between sensory and conceptual.",
			High: "Anglo-Saxon concrete vocabulary. Things with weight, temperature, texture. Actions visible to a camera. Nouns you can hold.",
		},
		Image: BucketVocabulary{
			Low:  "Geometric abstraction. Flat color fields. Schematic rather than photographic. Conceptual space.",
			Mid:  "Recognizable materials with selective detail. Key textures rendered, others implied.",
			High: "Explicit material rendering. Visible grain, weave, condensation, patina. Surfaces you can feel.",
		},
	},
	{
		Axis:        AxisOrnamentalRegister,
		Name:        "Ornamental Register",
		Description: "Decoration density - adjective frequency, figurative language, lexical rarity. The prose surface treatment.",
		LowLabel:    "stripped / anti-ornamental",
		HighLabel:   "lush / baroque",
		Text: BucketVocabulary{
			Low:  "No unnecessary adjectives. Plain nouns. Metaphor only when unavoidable. Common Anglo-Saxon vocabulary.",
			Mid:  "Selective ornamentation. Well-placed figurative language. Elegant but not excessive.",
			High: "Lush adjectival profusion. Dense figurative language. Rare and archaic vocabulary. Cataloging through ornamental excess.",
		},
		Image: BucketVocabulary{
			Low:  "Clean surfaces. Minimal texture. Modernist reduction. Negative space as design element.",
			Mid:  "Selective surface detail. Key areas rendered with precision, others simplified.",
			High: "Highly detailed ornamental surfaces. Pattern-on-pattern. Filigree, brocade, botanical density. Horror vacui - every surface activated.",
		},
	},
	{
		Axis:        AxisTensionVisibility,
		Name:        "Tension Visibility",
		Description: "Whether tension lives on the surface or remains submerged.",
		LowLabel:    "submerged / iceberg",
		HighLabel:   "externalized / explicit",
		Text: BucketVocabulary{
			Low:  "Never name the emotion. Render behavior and objects. Reader infers tension from what is not said.",
			Mid:  "Acknowledge tension through measured observation. Clinical precision about emotional states.",
			High: "Name the tension directly. Escalating emotional vocabulary. Narrator's distress is the content.",
		},
		Image: BucketVocabulary{
			Low:  "Even, ambient lighting. Tension encoded in compositional unease - off-center framing, ambiguous gaze vectors, objects slightly wrong.",
			Mid:  "Directional lighting creating defined shadows. Moderate tonal contrast. Tension visible but controlled.",
			High: "Dramatic chiaroscuro. Deep shadows, hard light. Diagonal composition lines. Explicit visual conflict and confrontation.",
		},
	},
	{
		Axis:        AxisTensionTemporality,
		Name:        "Tension Temporality",
		Description: "Whether tension accumulates slowly over time or arrives as rupture.",
		LowLabel:    "ruptural / episodic",
		HighLabel:   "accumulative / inevitable",
		Text: BucketVocabulary{
			Low:  "Self-contained moments. Each passage complete in itself. Tension arrives without warning.",
			Mid:  "Gradual escalation through observation. Evidence accumulates. Paragraphs lengthen.",
			High: "Fate announced early, then approached with terrible patience. Each sentence worse than the last. Progressive revelation of the already-known.",
		},
		Image: BucketVocabulary{
			Low:  "Frozen moment. No implied before or after. Complete in the frame. Snapshot temporality.",
			Mid:  "Implied motion. Traces of what came before - footprints, smoke, residue. Subject mid-action.",
			High: "Temporal compositing. Multiple moments layered in single frame. Long exposure blur. Generational accumulation visible in environmental detail.",
		},
	},
	{
		Axis:        AxisRealityStability,
		Name:        "Reality Stability",
		Description: "How trustworthy is the depicted world - how much impossibility the text's internal logic permits.",
		LowLabel:    "unstable / paradoxical",
		HighLabel:   "stable / verifiable",
		Text: BucketVocabulary{
			Low:  "State impossible things as fact. No hedging. Paradox presented in declarative mode. Logic that folds back on itself.",
			Mid:  "Reality bends under observation. Familiar things behave strangely. One impossible element in an otherwise stable frame.",
			High: "Journalistic reliability. Verifiable details. Physical accuracy. Hedging language for uncertainty.",
		},
		Image: BucketVocabulary{
			Low:  "Impossible geometry. Escher-like spatial paradox. Recursive visual structures. Dream logic composition. Perspective that contradicts itself.",
			Mid:  "Physically plausible with one wrong element. Uncanny valley of space. Light from impossible source. Scale inconsistency.",
			High: "Physically accurate rendering. Correct perspective, lighting, material behavior. Photographic spatial logic.",
		},
	},
	{
		Axis:        AxisInteriority,
		Name:        "Interiority",
		Description: "Degree of access to inner experience - psychological depth and subjective consciousness rendered in the text.",
		LowLabel:    "exterior / behavioral",
		HighLabel:   "interior / consciousness",
		Text: BucketVocabulary{
			Low:  "Camera-eye. Behavior only. No access to thought. Dialogue and action. Reader infers psychology from surface.",
			Mid:  "Selective interiority. Observations filtered through a distinctive consciousness but not direct stream of thought.",
			High: "Language as thought happening. Consciousness rendered in real-time. The sentence IS the inner experience.",
		},
		Image: BucketVocabulary{
			Low:  "Wide environmental framing. Figure-in-landscape. Deep depth of field. Subject as element of composition, not psychological center.",
			Mid:  "Medium shot. Subject's face visible. Environmental context retained. Gaze vector at 15-30 degrees from camera axis.",
			High: "Tight framing. Eyes prominent. Shallow depth of field isolating subject. Direct or near-direct gaze vector to viewer. Background dissolved into bokeh.",
		},
	},
	{
		Axis:        AxisTemporalMode,
		Name:        "Temporal Mode",
		Description: "The text's relationship to time - from episodic eternal present to cyclical/exhaustive temporal structures.",
		LowLabel:    "eternal present / episodic",
		HighLabel:   "cyclical / exhaustive",
		Text: BucketVocabulary{
			Low:  "Each passage exists in its own present. No before or after implied. Self-contained observation. Time as a series of discrete nows.",
			Mid:  "Awareness of duration. Past informing present. Flashback and prolepsis available but controlled. Deep time acknowledged.",
			High: "All moments present simultaneously. Cyclical return. Generations rhyming. Every permutation explored. Time as exhaustive catalog.",
		},
		Image: BucketVocabulary{
			Low:  "Crisp frozen instant. No motion blur. No implied sequence. Photograph temporality.",
			Mid:  "Implied duration. Weathering, aging, patina suggesting passage of time. Environmental storytelling through wear.",
			High: "Multiple temporal layers in single frame. Ghosting, palimpsest, archaeological stratification. Long exposure. Decay and growth co-present.",
		},
	},
}

var dimensionByAxis = func() map[Axis]*Dimension {
	byAxis := make(map[Axis]*Dimension, len(dimensionTable))
	for i := range dimensionTable {
		byAxis[dimensionTable[i].Axis] = &dimensionTable[i]
	}
	return byAxis
}()

// Dimensions returns the full specs of the 8 axes in declaration order.
// The result is a fresh copy; the underlying table never changes.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensionTable))
	copy(out, dimensionTable)
	return out
}

// DimensionFor returns the full spec of a single axis.
func DimensionFor(axis Axis) (Dimension, error) {
	d, ok := dimensionByAxis[axis]
	if !ok {
		return Dimension{}, validationf("unknown axis %q", axis)
	}
	return *d, nil
}

// BucketFor maps a value in [0, 1] to its bucket. The partition is total:
// low is [0, 1/3), mid is [1/3, 2/3], high is (2/3, 1]. Both boundaries
// close on the mid side.
func BucketFor(value float64) Bucket {
	switch {
	case value < 1.0/3.0:
		return BucketLow
	case value > 2.0/3.0:
		return BucketHigh
	default:
		return BucketMid
	}
}

// bucketDepth reports how far into its bucket a value sits, scaled to
// [0, 1]. Downstream consumers use it to modulate directive intensity near
// bucket boundaries.
func bucketDepth(value float64) float64 {
	const third = 1.0 / 3.0
	switch BucketFor(value) {
	case BucketLow:
		return value / third
	case BucketHigh:
		// The high bucket spans [2/3, 1]; dividing by the true span
		// rather than 1/3 keeps bucketDepth(1) at exactly 1.
		return (value - 2*third) / (1 - 2*third)
	default:
		return (value - third) / third
	}
}
