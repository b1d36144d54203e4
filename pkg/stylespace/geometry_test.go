package stylespace

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-12

func TestDistance_IdenticalCoordinates(t *testing.T) {
	c := uniformCoordinate(0.5)
	report, err := Distance(c, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Distance != 0 {
		t.Errorf("distance between identical coordinates must be exactly 0, got %v", report.Distance)
	}
	if report.MaxGap != 0 {
		t.Errorf("max gap should be 0, got %v", report.MaxGap)
	}
	// All gaps tie at zero, so the first declared axis wins.
	if report.MaxGapAxis != axisOrder[0] {
		t.Errorf("tied max gap should resolve to first axis, got %s", report.MaxGapAxis)
	}
}

func TestDistance_SingleAxisGap(t *testing.T) {
	a := uniformCoordinate(0.5)
	b := uniformCoordinate(0.5)
	a[AxisRealityStability] = 0.1
	b[AxisRealityStability] = 0.9
	report, err := Distance(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(report.Distance-0.8) > epsilon {
		t.Errorf("expected distance 0.8, got %v", report.Distance)
	}
	if report.MaxGapAxis != AxisRealityStability {
		t.Errorf("expected reality_stability flagged, got %s", report.MaxGapAxis)
	}
	if math.Abs(report.MaxGap-0.8) > epsilon {
		t.Errorf("expected max gap 0.8, got %v", report.MaxGap)
	}
}

func TestDistance_SymmetricOverCatalog(t *testing.T) {
	c := DefaultCatalog()
	ids := c.IDs()
	for _, id1 := range ids {
		for _, id2 := range ids {
			forward, err := c.Distance(id1, id2)
			if err != nil {
				t.Fatalf("distance(%s, %s): %v", id1, id2, err)
			}
			backward, err := c.Distance(id2, id1)
			if err != nil {
				t.Fatalf("distance(%s, %s): %v", id2, id1, err)
			}
			// Exact equality, not approximate: the accumulation order is
			// axis declaration order regardless of operand order.
			if forward.Distance != backward.Distance {
				t.Errorf("distance(%s, %s) = %v but distance(%s, %s) = %v",
					id1, id2, forward.Distance, id2, id1, backward.Distance)
			}
			if id1 == id2 && forward.Distance != 0 {
				t.Errorf("distance(%s, %s) should be 0, got %v", id1, id2, forward.Distance)
			}
		}
	}
}

func TestDistance_TriangleInequality(t *testing.T) {
	c := DefaultCatalog()
	ids := c.IDs()
	dist := func(x, y string) float64 {
		r, err := c.Distance(x, y)
		if err != nil {
			t.Fatalf("distance(%s, %s): %v", x, y, err)
		}
		return r.Distance
	}
	for _, a := range ids {
		for _, b := range ids {
			for _, via := range ids {
				if dist(a, b) > dist(a, via)+dist(via, b)+epsilon {
					t.Errorf("triangle inequality violated for %s, %s via %s", a, b, via)
				}
			}
		}
	}
}

func TestDistance_Normalized(t *testing.T) {
	report, err := Distance(uniformCoordinate(0), uniformCoordinate(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(report.Distance-math.Sqrt(NumAxes)) > epsilon {
		t.Errorf("expected maximal distance sqrt(%d), got %v", NumAxes, report.Distance)
	}
	if math.Abs(report.Normalized-1) > epsilon {
		t.Errorf("normalized maximal distance should be 1, got %v", report.Normalized)
	}
}

func TestDistance_InvalidOperands(t *testing.T) {
	bad := uniformCoordinate(0.5)
	bad[AxisInteriority] = 1.5
	if _, err := Distance(bad, uniformCoordinate(0.5)); !IsValidation(err) {
		t.Errorf("expected validation error for first operand, got %v", err)
	}
	if _, err := Distance(uniformCoordinate(0.5), bad); !IsValidation(err) {
		t.Errorf("expected validation error for second operand, got %v", err)
	}
}

func TestCatalogDistance_UnknownID(t *testing.T) {
	c := DefaultCatalog()
	if _, err := c.Distance("hemingway", "nabokov"); !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if _, err := c.Distance("nabokov", "hemingway"); !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestBlend_Identity(t *testing.T) {
	c := DefaultCatalog()
	result, err := c.Blend(BlendSpec{{ID: "lovecraft", Weight: 1.0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, _ := c.Get("lovecraft")
	for _, axis := range axisOrder {
		if result.Coordinate[axis] != entry.Coordinate[axis] {
			t.Errorf("axis %s: blend of one entry at weight 1 should reproduce it exactly, got %v want %v",
				axis, result.Coordinate[axis], entry.Coordinate[axis])
		}
	}
	if result.Nearest.ID != "lovecraft" {
		t.Errorf("nearest to an identity blend should be the entry itself, got %s", result.Nearest.ID)
	}
	if result.Nearest.Distance != 0 {
		t.Errorf("nearest distance should be 0, got %v", result.Nearest.Distance)
	}
}

func TestBlend_Midpoint(t *testing.T) {
	c := DefaultCatalog()
	result, err := c.Blend(BlendSpec{{ID: "de_sade", Weight: 0.5}, {ID: "borges", Weight: 0.5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Interiority: de_sade = 0.20, borges = 0.80.
	if math.Abs(result.Coordinate[AxisInteriority]-0.5) > epsilon {
		t.Errorf("midpoint interiority should be 0.5, got %v", result.Coordinate[AxisInteriority])
	}
}

func TestBlend_WeightNormalization(t *testing.T) {
	c := DefaultCatalog()
	raw, err := c.Blend(BlendSpec{{ID: "kafka", Weight: 3}, {ID: "didion", Weight: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	normalized, err := c.Blend(BlendSpec{{ID: "kafka", Weight: 0.75}, {ID: "didion", Weight: 0.25}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, axis := range axisOrder {
		if math.Abs(raw.Coordinate[axis]-normalized.Coordinate[axis]) > epsilon {
			t.Errorf("axis %s: {3,1} and {0.75,0.25} should blend identically, got %v vs %v",
				axis, raw.Coordinate[axis], normalized.Coordinate[axis])
		}
	}
}

func TestBlend_ConvexHull(t *testing.T) {
	c := DefaultCatalog()
	spec := BlendSpec{
		{ID: "hemingway", Weight: 0.2},
		{ID: "lovecraft", Weight: 0.5},
		{ID: "shonagon", Weight: 0.3},
	}
	result, err := c.Blend(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := result.Coordinate.Validate(); err != nil {
		t.Fatalf("blend centroid must be a valid coordinate: %v", err)
	}
	for _, axis := range axisOrder {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, term := range spec {
			e, _ := c.Get(term.ID)
			lo = math.Min(lo, e.Coordinate[axis])
			hi = math.Max(hi, e.Coordinate[axis])
		}
		v := result.Coordinate[axis]
		if v < lo-epsilon || v > hi+epsilon {
			t.Errorf("axis %s: centroid %v outside member range [%v, %v]", axis, v, lo, hi)
		}
	}
}

func TestBlend_BoundaryMembersStayInCube(t *testing.T) {
	// Entries sitting exactly on the upper bound must not push the
	// centroid past 1 when the normalized weights round up by an ulp.
	c, err := New([]StyleEntry{
		{ID: "ceiling_a", DisplayName: "Ceiling A", Coordinate: uniformCoordinate(1)},
		{ID: "ceiling_b", DisplayName: "Ceiling B", Coordinate: uniformCoordinate(1)},
		{ID: "ceiling_c", DisplayName: "Ceiling C", Coordinate: uniformCoordinate(1)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i <= 19; i++ {
		for j := 1; j <= 19; j++ {
			for k := 1; k <= 19; k++ {
				spec := BlendSpec{
					{ID: "ceiling_a", Weight: float64(i) * 0.05},
					{ID: "ceiling_b", Weight: float64(j) * 0.05},
					{ID: "ceiling_c", Weight: float64(k) * 0.05},
				}
				result, err := c.Blend(spec)
				if err != nil {
					t.Fatalf("weights %d/%d/%d: unexpected error: %v", i, j, k, err)
				}
				for _, axis := range axisOrder {
					if v := result.Coordinate[axis]; v > 1 || v < 1-epsilon {
						t.Fatalf("weights %d/%d/%d: axis %s drifted off the bound: %v", i, j, k, axis, v)
					}
				}
			}
		}
	}
}

func TestBlend_SignatureUnion(t *testing.T) {
	c := DefaultCatalog()
	result, err := c.Blend(BlendSpec{{ID: "borges", Weight: 0.5}, {ID: "kafka", Weight: 0.5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	borges, _ := c.Get("borges")
	kafka, _ := c.Get("kafka")
	want := len(borges.SignatureMoves) + len(kafka.SignatureMoves)
	if len(result.SignatureMoves) != want {
		t.Fatalf("expected %d merged moves, got %d", want, len(result.SignatureMoves))
	}
	// Moves of the first declared member come first.
	if result.SignatureMoves[0] != borges.SignatureMoves[0] {
		t.Errorf("first move should come from borges, got %q", result.SignatureMoves[0])
	}
	if result.SignatureMoves[len(borges.SignatureMoves)] != kafka.SignatureMoves[0] {
		t.Errorf("kafka's moves should follow borges's")
	}
}

func TestBlend_AllZeroWeights(t *testing.T) {
	c := DefaultCatalog()
	_, err := c.Blend(BlendSpec{{ID: "kafka", Weight: 0}, {ID: "borges", Weight: 0}})
	if !IsValidation(err) {
		t.Errorf("expected validation error for all-zero weights, got %v", err)
	}
}

func TestBlend_UnknownMember(t *testing.T) {
	c := DefaultCatalog()
	_, err := c.Blend(BlendSpec{{ID: "hemingway", Weight: 0.5}, {ID: "nabokov", Weight: 0.5}})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.ID != "nabokov" {
		t.Errorf("error should name the missing member, got %q", nf.ID)
	}
}

func TestNearest_ExcludesSelf(t *testing.T) {
	c := DefaultCatalog()
	for _, id := range c.IDs() {
		nearest, err := c.NearestTo(id)
		if err != nil {
			t.Fatalf("nearest to %s: %v", id, err)
		}
		if nearest.ID == id {
			t.Errorf("nearest to %s must not be itself", id)
		}
		if nearest.Distance <= 0 {
			t.Errorf("nearest to %s should be at positive distance, got %v", id, nearest.Distance)
		}
	}
}

func TestNearest_IsTrueMinimum(t *testing.T) {
	c := DefaultCatalog()
	nearest, err := c.NearestTo("didion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range c.IDs() {
		if id == "didion" {
			continue
		}
		report, err := c.Distance("didion", id)
		if err != nil {
			t.Fatalf("distance(didion, %s): %v", id, err)
		}
		if report.Distance < nearest.Distance {
			t.Errorf("%s at %v is closer than reported nearest %s at %v",
				id, report.Distance, nearest.ID, nearest.Distance)
		}
	}
}

func TestNearest_EmptyAfterExclusion(t *testing.T) {
	entries := defaultEntries()[:2]
	c, err := New(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	excluding := map[string]bool{entries[0].ID: true, entries[1].ID: true}
	_, err = c.Nearest(uniformCoordinate(0.5), excluding)
	if !IsEmptyDomain(err) {
		t.Errorf("expected empty-domain error, got %v", err)
	}
}

func TestExtremes_GlobalMaximum(t *testing.T) {
	c := DefaultCatalog()
	result, err := c.Extremes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.A.ID >= result.B.ID {
		t.Errorf("extremes pair should be in lexical order, got (%s, %s)", result.A.ID, result.B.ID)
	}
	ids := c.IDs()
	for i, id1 := range ids {
		for _, id2 := range ids[i+1:] {
			report, err := c.Distance(id1, id2)
			if err != nil {
				t.Fatalf("distance(%s, %s): %v", id1, id2, err)
			}
			if report.Distance > result.Report.Distance {
				t.Errorf("pair (%s, %s) at %v beats reported extremes (%s, %s) at %v",
					id1, id2, report.Distance, result.A.ID, result.B.ID, result.Report.Distance)
			}
		}
	}
}

func TestExtremes_RequiresPair(t *testing.T) {
	c, err := New(defaultEntries()[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Extremes(); !IsEmptyDomain(err) {
		t.Errorf("expected empty-domain error for singleton catalog, got %v", err)
	}
}

func TestGeometry_WorksForAnyN(t *testing.T) {
	entries := defaultEntries()[:3]
	c, err := New(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
	if _, err := c.Extremes(); err != nil {
		t.Errorf("extremes over 3 entries: %v", err)
	}
	if _, err := c.NearestTo(entries[0].ID); err != nil {
		t.Errorf("nearest over 3 entries: %v", err)
	}
	spec := BlendSpec{{ID: entries[0].ID, Weight: 1}, {ID: entries[2].ID, Weight: 2}}
	if _, err := c.Blend(spec); err != nil {
		t.Errorf("blend over 3 entries: %v", err)
	}
}
