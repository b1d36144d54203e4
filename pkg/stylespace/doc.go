// Package stylespace models a fixed catalog of writing-style archetypes as
// points in an 8-dimensional continuous space and provides deterministic
// operations over that space.
//
// # Overview
//
// Every style lives in an 8-axis coordinate space where each axis is bounded
// to [0.0, 1.0]. The catalog binds named archetypes (Hemingway-esque,
// Borgesian, ...) to points in that space together with free-text
// signature moves and per-modality vocabulary overrides. All operations are
// closed-form arithmetic and table lookups; no network call, file access, or
// model inference happens anywhere in this package.
//
// # Core Concepts
//
// A Coordinate maps each of the 8 axes to a value in [0, 1]. Out-of-range or
// missing values are a validation error, never silently clamped.
//
// The Catalog is read-only reference data assembled once at process start.
// Concurrent callers may invoke any operation in parallel without
// coordination because nothing is mutated after construction.
//
// The geometry operations are Distance (Euclidean, with a per-axis
// breakdown), Blend (weighted centroid of catalog points), Nearest (linear
// scan with optional exclusions), and Extremes (the maximum-distance catalog
// pair). Ties are always broken deterministically: nearest-style ties by
// catalog declaration order, extremes ties by lexical identifier order.
//
// The prompt synthesizer translates any resolved Coordinate into a directive
// bundle for one of two downstream modalities (text generation or image
// generation) by bucketing each axis value into low/mid/high and composing
// the matching vocabulary fragments in axis declaration order.
//
// # Usage Example
//
//	import "github.com/inklab/esque/pkg/stylespace"
//
//	catalog := stylespace.DefaultCatalog()
//
//	report, err := catalog.Distance("hemingway", "de_sade")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(report.Distance, report.MaxGapAxis)
//
//	result, err := catalog.Blend(stylespace.BlendSpec{
//		{ID: "hemingway", Weight: 0.7},
//		{ID: "borges", Weight: 0.3},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	bundle, err := catalog.SynthesizeText(stylespace.Selector{Blend: result.Spec})
//
// # Design Principles
//
//   - Determinism: identical inputs always produce identical outputs,
//     including tie-breaks and fragment ordering
//   - Immutability: the catalog and axis tables never change after New
//   - Explicit failure: unknown identifiers, malformed coordinates, and
//     empty query domains raise typed errors; nothing is defaulted
//   - Simplicity: no dependencies beyond the standard library
package stylespace
