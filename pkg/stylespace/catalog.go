package stylespace

import "fmt"

// Catalog is a sealed collection of style entries. It is built once via New
// or DefaultCatalog and never mutated afterwards, so all methods are safe
// for concurrent use.
type Catalog struct {
	entries []StyleEntry
	byID    map[string]int
}

// New builds a catalog from the given entries. Every entry is validated and
// duplicate IDs are rejected. Coordinates are cloned on the way in so later
// writes to the caller's maps cannot reach the catalog.
func New(entries []StyleEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]StyleEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[e.ID]; exists {
			return nil, validationf("duplicate style id %q", e.ID)
		}
		e.Coordinate = e.Coordinate.Clone()
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// DefaultCatalog returns the built-in curated catalog. It panics if the
// built-in table fails validation, which would mean a broken build.
func DefaultCatalog() *Catalog {
	c, err := New(defaultEntries())
	if err != nil {
		panic(fmt.Sprintf("stylespace: built-in catalog invalid: %v", err))
	}
	return c
}

// Len reports the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// IDs returns all style IDs in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Entries returns all entries in declaration order. Each returned entry's
// coordinate is a copy; writing to it cannot reach the sealed catalog.
func (c *Catalog) Entries() []StyleEntry {
	out := make([]StyleEntry, len(c.entries))
	copy(out, c.entries)
	for i := range out {
		out[i].Coordinate = out[i].Coordinate.Clone()
	}
	return out
}

// Get looks up a single entry by ID. The returned entry's coordinate is a
// copy; writing to it cannot reach the sealed catalog.
func (c *Catalog) Get(id string) (StyleEntry, error) {
	i, ok := c.byID[id]
	if !ok {
		return StyleEntry{}, &NotFoundError{ID: id}
	}
	e := c.entries[i]
	e.Coordinate = e.Coordinate.Clone()
	return e, nil
}

func defaultEntries() []StyleEntry {
	return []StyleEntry{
		{
			ID:          "hemingway",
			DisplayName: "Hemingway-esque",
			Origin:      "English (American)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.10,
				AxisSensoryConcreteness: 0.90,
				AxisOrnamentalRegister:  0.05,
				AxisTensionVisibility:   0.10,
				AxisTensionTemporality:  0.25,
				AxisRealityStability:    0.90,
				AxisInteriority:         0.15,
				AxisTemporalMode:        0.20,
			},
			SignatureMoves: []string{
				"Omit the emotional core; render only its physical evidence",
				"Repeat simple conjunctions (and... and... and) for rhythm",
				"Dialogue without attribution tags beyond 'said'",
				"End scenes one beat before the expected resolution",
				"Concrete nouns carry the feeling the prose refuses to name",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"and", "then", "but"},
				SentenceStarters: []string{"The", "He", "She", "It", "They"},
				Forbidden:        []string{"very", "really", "utterly", "profoundly", "infinitely"},
				Register:         "Anglo-Saxon monosyllabic preference",
				ParagraphRhythm:  "short declarative bursts, 2-4 sentences",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"natural light", "documentary realism", "uncluttered composition"},
				ColorPalette: []string{"muted earth tones", "clear daylight"},
				CompositionalRules: []string{
					"single subject, clean background",
					"eye-level framing, no dramatic angles",
					"weather and terrain rendered with physical accuracy",
				},
			},
		},
		{
			ID:          "de_sade",
			DisplayName: "Sadean",
			Origin:      "French",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.95,
				AxisSensoryConcreteness: 0.50,
				AxisOrnamentalRegister:  0.90,
				AxisTensionVisibility:   0.95,
				AxisTensionTemporality:  0.80,
				AxisRealityStability:    0.60,
				AxisInteriority:         0.20,
				AxisTemporalMode:        0.90,
			},
			SignatureMoves: []string{
				"Philosophical digression interrupting scene at peak tension",
				"Exhaustive cataloging - every permutation enumerated",
				"Formal eighteenth-century register applied to transgressive content",
				"Direct address to the reader as complicit witness",
				"Architecture of confinement described in loving detail",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"moreover", "furthermore", "whereupon", "notwithstanding"},
				SentenceStarters: []string{"Consider", "Observe", "It is", "Nature", "Philosophy"},
				Forbidden:        []string{"maybe", "perhaps", "somewhat"},
				Register:         "formal Latinate, declamatory",
				ParagraphRhythm:  "long accumulating periods, 6+ clauses",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"baroque excess", "theatrical staging", "candlelit interiors"},
				ColorPalette: []string{"deep crimson", "gold", "black velvet shadow"},
				CompositionalRules: []string{
					"symmetrical tableau arrangement",
					"ornate architectural framing",
					"figures arranged in formal geometric patterns",
				},
			},
		},
		{
			ID:          "le_guin",
			DisplayName: "Le Guin-ian",
			Origin:      "English (American)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.50,
				AxisSensoryConcreteness: 0.55,
				AxisOrnamentalRegister:  0.45,
				AxisTensionVisibility:   0.50,
				AxisTensionTemporality:  0.60,
				AxisRealityStability:    0.40,
				AxisInteriority:         0.50,
				AxisTemporalMode:        0.55,
			},
			SignatureMoves: []string{
				"Anthropological framing - cultures observed with patient respect",
				"The fantastic treated as ordinary, the ordinary as strange",
				"Balance in sentence and in worldview; neither pole wins",
				"Quiet wisdom delivered through character rather than narrator",
				"Landscape as moral presence",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"and", "yet", "though", "while"},
				SentenceStarters: []string{"In", "There", "The", "One", "When"},
				Forbidden:        []string{"suddenly", "amazing", "incredible"},
				Register:         "measured plainsong, occasional archaism",
				ParagraphRhythm:  "even paragraphs, steady pace",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"painterly realism", "anthropological detail", "lived-in worlds"},
				ColorPalette: []string{"natural ochres", "sea grays", "forest greens"},
				CompositionalRules: []string{
					"human figure in balanced relation to landscape",
					"built environments showing age and use",
					"soft directional light, no theatrical contrast",
				},
			},
		},
		{
			ID:          "didion",
			DisplayName: "Didion-esque",
			Origin:      "English (American)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.45,
				AxisSensoryConcreteness: 0.70,
				AxisOrnamentalRegister:  0.15,
				AxisTensionVisibility:   0.30,
				AxisTensionTemporality:  0.40,
				AxisRealityStability:    0.95,
				AxisInteriority:         0.60,
				AxisTemporalMode:        0.40,
			},
			SignatureMoves: []string{
				"The telling detail that stands for the whole disintegration",
				"Repetition of a phrase until it becomes ominous",
				"Clinical precision about one's own psychological state",
				"Place names and brand names as incantation",
				"The sentence that withholds its subject until the end",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"and", "because", "since"},
				SentenceStarters: []string{"I", "We", "This", "That", "It"},
				Forbidden:        []string{"wonderful", "beautiful", "exciting"},
				Register:         "journalistic precision, flat affect",
				ParagraphRhythm:  "controlled paragraphs ending on a drop",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"harsh sunlight", "California vernacular", "editorial photography"},
				ColorPalette: []string{"bleached white", "smog haze", "swimming-pool blue"},
				CompositionalRules: []string{
					"wide empty spaces with single human trace",
					"hard shadows at noon",
					"the ominous ordinary: parking lots, freeways, motel signs",
				},
			},
		},
		{
			ID:          "lovecraft",
			DisplayName: "Lovecraftian",
			Origin:      "English (American)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.85,
				AxisSensoryConcreteness: 0.40,
				AxisOrnamentalRegister:  0.85,
				AxisTensionVisibility:   0.80,
				AxisTensionTemporality:  0.85,
				AxisRealityStability:    0.15,
				AxisInteriority:         0.70,
				AxisTemporalMode:        0.75,
			},
			SignatureMoves: []string{
				"The unnameable described through failed comparison",
				"Scholarly apparatus - documents, letters, expedition reports",
				"Adjectival escalation: strange, monstrous, blasphemous, cyclopean",
				"Narrator's sanity eroding in the grammar itself",
				"Deep time dwarfing human history",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"for", "whereby", "wherein", "whence"},
				SentenceStarters: []string{"That", "What", "None", "Beyond", "From"},
				Forbidden:        []string{"nice", "okay", "normal"},
				Register:         "archaic scholarly, adjectivally saturated",
				ParagraphRhythm:  "mounting paragraphs collapsing into italics or ellipsis",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"cosmic horror", "non-Euclidean architecture", "bioluminescent decay"},
				ColorPalette: []string{"abyssal green-black", "sickly phosphorescence"},
				CompositionalRules: []string{
					"scale contrast: tiny human against vast form",
					"geometry subtly wrong, angles that repel the eye",
					"the horror partially obscured, never centered",
				},
			},
		},
		{
			ID:          "borges",
			DisplayName: "Borgesian",
			Origin:      "Spanish (Argentine)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.80,
				AxisSensoryConcreteness: 0.15,
				AxisOrnamentalRegister:  0.60,
				AxisTensionVisibility:   0.55,
				AxisTensionTemporality:  0.70,
				AxisRealityStability:    0.10,
				AxisInteriority:         0.80,
				AxisTemporalMode:        0.70,
			},
			SignatureMoves: []string{
				"Fictional scholarship cited with real scholarship's apparatus",
				"Infinity arrived at through rigorous logical steps",
				"The story that contains its own commentary",
				"Mirrors, labyrinths, libraries as structural principle",
				"Erudition as vertigo",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"thus", "hence", "that is", "in other words"},
				SentenceStarters: []string{"It", "One", "Some", "In", "To"},
				Forbidden:        []string{"felt", "emotional", "heartwarming"},
				Register:         "essayistic precision, learned references",
				ParagraphRhythm:  "dense paragraphs, each a complete argument",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"impossible architecture", "infinite recursion", "engraving aesthetic"},
				ColorPalette: []string{"sepia", "ivory", "candlelight amber"},
				CompositionalRules: []string{
					"recursive structures: rooms within rooms",
					"perfect symmetry suggesting the infinite",
					"books, mirrors, chess pieces as compositional anchors",
				},
			},
		},
		{
			ID:          "murakami",
			DisplayName: "Murakami-esque",
			Origin:      "Japanese",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.25,
				AxisSensoryConcreteness: 0.80,
				AxisOrnamentalRegister:  0.20,
				AxisTensionVisibility:   0.20,
				AxisTensionTemporality:  0.20,
				AxisRealityStability:    0.20,
				AxisInteriority:         0.55,
				AxisTemporalMode:        0.25,
			},
			SignatureMoves: []string{
				"The impossible event narrated in the tone of making coffee",
				"Precise inventory of ordinary objects and meals",
				"Jazz records and brand names as emotional coordinates",
				"Wells, cats, and parallel worlds entered without ceremony",
				"Deadpan acceptance replacing astonishment",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"and", "so", "anyway"},
				SentenceStarters: []string{"I", "The", "She", "It", "Maybe"},
				Forbidden:        []string{"terrifying", "unbelievable", "shocking"},
				Register:         "conversational flatness, occasional lyric lift",
				ParagraphRhythm:  "easy short paragraphs, dialogue-heavy",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"urban loneliness", "fluorescent night", "magical realist calm"},
				ColorPalette: []string{"neon against blue dusk", "interior lamplight"},
				CompositionalRules: []string{
					"solitary figure in ordinary setting with one wrong detail",
					"empty urban spaces at night",
					"flat even light, muted affect",
				},
			},
		},
		{
			ID:          "marquez",
			DisplayName: "Marquezian",
			Origin:      "Spanish (Colombian)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.75,
				AxisSensoryConcreteness: 0.75,
				AxisOrnamentalRegister:  0.80,
				AxisTensionVisibility:   0.70,
				AxisTensionTemporality:  0.95,
				AxisRealityStability:    0.30,
				AxisInteriority:         0.40,
				AxisTemporalMode:        0.85,
			},
			SignatureMoves: []string{
				"The outcome announced in the first sentence, then approached for pages",
				"Miracles reported with journalistic exactitude and numbers",
				"Generations rhyming - names and fates recurring",
				"The sentence that contains a whole lifetime",
				"Hyperbole stated as measured fact",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"and", "because", "until", "while"},
				SentenceStarters: []string{"Many", "Years", "It", "The", "When"},
				Forbidden:        []string{"unbelievably", "magically", "strangely"},
				Register:         "lush declarative, biblical cadence",
				ParagraphRhythm:  "river-long paragraphs, few breaks",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"tropical saturation", "magical realism", "colonial decay"},
				ColorPalette: []string{"saturated yellows", "jungle green", "rust and gold"},
				CompositionalRules: []string{
					"lush overgrowth reclaiming built structures",
					"impossible event rendered with documentary clarity",
					"generational layering: old and young in one frame",
				},
			},
		},
		{
			ID:          "kafka",
			DisplayName: "Kafkaesque",
			Origin:      "German (Bohemian)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.65,
				AxisSensoryConcreteness: 0.35,
				AxisOrnamentalRegister:  0.10,
				AxisTensionVisibility:   0.35,
				AxisTensionTemporality:  0.30,
				AxisRealityStability:    0.25,
				AxisInteriority:         0.35,
				AxisTemporalMode:        0.30,
			},
			SignatureMoves: []string{
				"The monstrous premise accepted in the first sentence, never explained",
				"Bureaucratic procedure described with exhausting patience",
				"Doors, corridors, and offices that multiply",
				"The protagonist's reasonable tone against unreasonable circumstance",
				"Authority always one room further away",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"however", "although", "nevertheless", "of course"},
				SentenceStarters: []string{"It", "He", "One", "Someone", "The"},
				Forbidden:        []string{"absurd", "surreal", "nightmarish"},
				Register:         "dry official German-inflected formality",
				ParagraphRhythm:  "long winding paragraphs, few breaks, clause chains",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"bureaucratic labyrinth", "oppressive interiors", "gray institutional light"},
				ColorPalette: []string{"dust gray", "ink black", "pale document white"},
				CompositionalRules: []string{
					"corridors receding past the frame edge",
					"human figure dwarfed by filing and architecture",
					"flat institutional lighting, no warmth",
				},
			},
		},
		{
			ID:          "shonagon",
			DisplayName: "Shonagon-esque",
			Origin:      "Japanese (Heian)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.15,
				AxisSensoryConcreteness: 0.95,
				AxisOrnamentalRegister:  0.40,
				AxisTensionVisibility:   0.25,
				AxisTensionTemporality:  0.15,
				AxisRealityStability:    0.85,
				AxisInteriority:         0.65,
				AxisTemporalMode:        0.10,
			},
			SignatureMoves: []string{
				"The list as literary form - elegant things, hateful things",
				"Aesthetic judgment delivered with serene confidence",
				"The precise seasonal moment: this dawn, this frost",
				"Court gossip elevated to observation of the human",
				"Delight in the small and fleeting over the grand",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"and", "also", "then"},
				SentenceStarters: []string{"In", "On", "How", "Things", "A"},
				Forbidden:        []string{"ultimately", "fundamentally", "essentially"},
				Register:         "refined observational, catalog cadence",
				ParagraphRhythm:  "brief entries, list structures, fresh starts",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"seasonal precision", "court elegance", "ukiyo-e flatness"},
				ColorPalette: []string{"plum blossom white", "silk crimson", "dawn lavender"},
				CompositionalRules: []string{
					"single exquisite object given full attention",
					"seasonal markers precisely rendered",
					"flattened perspective, decorative arrangement",
				},
			},
		},
		{
			ID:          "lispector",
			DisplayName: "Lispectorian",
			Origin:      "Portuguese (Brazilian)",
			Coordinate: Coordinate{
				AxisSyntacticDensity:    0.55,
				AxisSensoryConcreteness: 0.60,
				AxisOrnamentalRegister:  0.55,
				AxisTensionVisibility:   0.65,
				AxisTensionTemporality:  0.50,
				AxisRealityStability:    0.50,
				AxisInteriority:         0.95,
				AxisTemporalMode:        0.45,
			},
			SignatureMoves: []string{
				"The ordinary moment cracked open into metaphysical crisis",
				"Sentences that interrupt and contradict themselves mid-thought",
				"The narrator addressing her own act of writing",
				"An egg, a cockroach, a mirror becoming the whole of existence",
				"Grammar strained to hold pre-verbal experience",
			},
			Text: &TextVocabulary{
				Conjunctions:     []string{"and", "but", "or rather", "no:"},
				SentenceStarters: []string{"I", "It", "To", "What", "And"},
				Forbidden:        []string{"simply", "obviously", "clearly"},
				Register:         "incantatory interiority, paradox embraced",
				ParagraphRhythm:  "breathless runs broken by single-sentence stabs",
			},
			Image: &ImageVocabulary{
				Keywords:     []string{"extreme close-up", "domestic uncanny", "luminous banality"},
				ColorPalette: []string{"egg-yolk yellow", "skin tones", "white on white"},
				CompositionalRules: []string{
					"macro detail of ordinary object filling frame",
					"face in partial shadow mid-revelation",
					"shallow focus dissolving all context",
				},
			},
		},
	}
}
