package stylespace

import (
	"fmt"
	"math"
	"strings"
)

// Distance computes the Euclidean distance between two coordinates along
// with a per-axis gap breakdown. Both operands are validated first. The
// computation is symmetric: swapping a and b yields an identical report.
func Distance(a, b Coordinate) (*DistanceReport, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("first coordinate: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("second coordinate: %w", err)
	}
	report := &DistanceReport{
		PerAxis: make([]AxisGap, 0, NumAxes),
	}
	var sumSq float64
	for _, axis := range axisOrder {
		va, vb := a[axis], b[axis]
		gap := math.Abs(va - vb)
		sumSq += gap * gap
		report.PerAxis = append(report.PerAxis, AxisGap{Axis: axis, A: va, B: vb, Gap: gap})
		// Strict > keeps the first axis in declaration order on ties.
		if gap > report.MaxGap || report.MaxGapAxis == "" {
			report.MaxGap = gap
			report.MaxGapAxis = axis
		}
	}
	report.Distance = math.Sqrt(sumSq)
	report.Normalized = report.Distance / math.Sqrt(NumAxes)
	return report, nil
}

// Distance computes the distance report between two catalog entries.
func (c *Catalog) Distance(id1, id2 string) (*DistanceReport, error) {
	a, err := c.Get(id1)
	if err != nil {
		return nil, err
	}
	b, err := c.Get(id2)
	if err != nil {
		return nil, err
	}
	return Distance(a.Coordinate, b.Coordinate)
}

// Blend computes the weighted centroid of the named entries. Weights are
// normalized to sum to 1 before interpolation, so {3, 1} and {0.75, 0.25}
// produce the same point. Normalized weights can sum to 1 plus an ulp,
// which pushes members sitting exactly on a bound out of the unit cube,
// so the centroid is pinned back to [0, 1] per axis. Signature moves are
// the union of the members' moves in declared order, duplicates removed.
func (c *Catalog) Blend(spec BlendSpec) (*BlendResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	entries := make([]StyleEntry, 0, len(spec))
	for _, term := range spec {
		e, err := c.Get(term.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	normalized := spec.normalized()
	centroid := make(Coordinate, NumAxes)
	for _, axis := range axisOrder {
		var v float64
		for i, term := range normalized {
			v += term.Weight * entries[i].Coordinate[axis]
		}
		// Rounding in the normalized weights can overshoot a bound by
		// an ulp; pin the centroid to the cube.
		if v > 1 {
			v = 1
		} else if v < 0 {
			v = 0
		}
		centroid[axis] = v
	}

	var moves []string
	seen := make(map[string]bool)
	for _, e := range entries {
		for _, m := range e.SignatureMoves {
			if seen[m] {
				continue
			}
			seen[m] = true
			moves = append(moves, m)
		}
	}

	nearest, err := c.Nearest(centroid, nil)
	if err != nil {
		return nil, err
	}

	return &BlendResult{
		Spec:           normalized,
		Display:        blendDisplay(c, normalized),
		Coordinate:     centroid,
		Nearest:        *nearest,
		SignatureMoves: moves,
	}, nil
}

// Nearest finds the catalog entry closest to the given point, skipping any
// IDs in excluding. Ties resolve to the entry declared first. Returns an
// EmptyDomainError when exclusion leaves no candidates.
func (c *Catalog) Nearest(point Coordinate, excluding map[string]bool) (*NearestEntry, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}
	var winner *NearestEntry
	for i := range c.entries {
		e := &c.entries[i]
		if excluding[e.ID] {
			continue
		}
		report, err := Distance(point, e.Coordinate)
		if err != nil {
			return nil, err
		}
		if winner == nil || report.Distance < winner.Distance {
			winner = &NearestEntry{
				ID:          e.ID,
				DisplayName: e.DisplayName,
				Distance:    report.Distance,
			}
		}
	}
	if winner == nil {
		return nil, &EmptyDomainError{Op: "nearest"}
	}
	return winner, nil
}

// NearestTo finds the catalog entry closest to the named entry, excluding
// the entry itself.
func (c *Catalog) NearestTo(id string) (*NearestEntry, error) {
	e, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	return c.Nearest(e.Coordinate, map[string]bool{id: true})
}

// ExtremesResult names the two catalog entries furthest apart.
type ExtremesResult struct {
	A      StyleEntry
	B      StyleEntry
	Report *DistanceReport
}

// Extremes scans all entry pairs and returns the pair with the maximum
// distance. Equidistant pairs resolve to the lexically smaller (ID1, ID2)
// tuple, and the result is normalized so A.ID < B.ID. Requires at least
// two entries.
func (c *Catalog) Extremes() (*ExtremesResult, error) {
	if len(c.entries) < 2 {
		return nil, &EmptyDomainError{Op: "extremes"}
	}
	var (
		best  *ExtremesResult
		bestA string
		bestB string
	)
	for i := range c.entries {
		for j := i + 1; j < len(c.entries); j++ {
			a, b := &c.entries[i], &c.entries[j]
			report, err := Distance(a.Coordinate, b.Coordinate)
			if err != nil {
				return nil, err
			}
			if best == nil || report.Distance > best.Report.Distance ||
				(report.Distance == best.Report.Distance && lessPair(a.ID, b.ID, bestA, bestB)) {
				best = &ExtremesResult{A: *a, B: *b, Report: report}
				bestA, bestB = a.ID, b.ID
			}
		}
	}
	if strings.Compare(best.A.ID, best.B.ID) > 0 {
		best.A, best.B = best.B, best.A
	}
	best.A.Coordinate = best.A.Coordinate.Clone()
	best.B.Coordinate = best.B.Coordinate.Clone()
	return best, nil
}

// lessPair compares two unordered ID pairs after normalizing each to
// lexical order.
func lessPair(a1, a2, b1, b2 string) bool {
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	if a1 != b1 {
		return a1 < b1
	}
	return a2 < b2
}

// blendDisplay renders a human label like "70% Hemingway-esque / 30%
// Borgesian" with terms ordered by descending weight.
func blendDisplay(c *Catalog, normalized BlendSpec) string {
	terms := sortTermsByWeight(normalized)
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		name := t.ID
		if e, err := c.Get(t.ID); err == nil {
			name = e.DisplayName
		}
		parts = append(parts, fmt.Sprintf("%.0f%% %s", t.Weight*100, name))
	}
	return strings.Join(parts, " / ")
}
