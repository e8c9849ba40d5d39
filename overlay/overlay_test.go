package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rect(x0, y0, x1, y1 int32) Ring {
	return Ring{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

func TestOverlayUnionOfDisjointRects(t *testing.T) {
	subject := []Ring{rect(0, 0, 10, 10)}
	clip := []Ring{rect(20, 0, 30, 10)}

	shapes := Compute(subject, clip, FillRuleNonZero, OverlayRuleUnion, SolverAuto)
	if len(shapes) != 2 {
		t.Fatalf("union of disjoint rects: got %d shapes, want 2", len(shapes))
	}
}

func TestOverlayIntersectOfOverlappingRects(t *testing.T) {
	subject := []Ring{rect(0, 0, 10, 10)}
	clip := []Ring{rect(5, 5, 15, 15)}

	shapes := Compute(subject, clip, FillRuleNonZero, OverlayRuleIntersect, SolverAuto)
	if len(shapes) != 1 {
		t.Fatalf("intersect of overlapping rects: got %d shapes, want 1", len(shapes))
	}
	want := rect(5, 5, 10, 10)
	if diff := cmp.Diff(want, normalizeRing(shapes[0].Outer)); diff != "" {
		t.Errorf("intersection ring mismatch (-want +got):\n%s", diff)
	}
}

func TestOverlaySubjectRoundTrip(t *testing.T) {
	// Extracting a single shape under OverlayRuleSubject with no clip
	// geometry should hand the input back unchanged (§8 round-trip
	// property).
	subject := []Ring{rect(0, 0, 10, 10)}

	shapes := Compute(subject, nil, FillRuleNonZero, OverlayRuleSubject, SolverAuto)
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	if diff := cmp.Diff(rect(0, 0, 10, 10), normalizeRing(shapes[0].Outer)); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOverlayDifferenceIsNotCommutative(t *testing.T) {
	subject := []Ring{rect(0, 0, 10, 10)}
	clip := []Ring{rect(5, 0, 15, 10)}

	ab := Compute(subject, clip, FillRuleNonZero, OverlayRuleDifference, SolverAuto)
	ba := Compute(clip, subject, FillRuleNonZero, OverlayRuleDifference, SolverAuto)

	if len(ab) == 0 || len(ba) == 0 {
		t.Fatalf("expected both differences to be non-empty, got %d and %d", len(ab), len(ba))
	}
	if cmp.Equal(normalizeRing(ab[0].Outer), normalizeRing(ba[0].Outer)) {
		t.Errorf("A-B and B-A produced the same ring; difference should not be commutative")
	}
}

func TestOverlayXorEqualsUnionMinusIntersect(t *testing.T) {
	subject := []Ring{rect(0, 0, 10, 10)}
	clip := []Ring{rect(5, 5, 15, 15)}

	xorShapes := Compute(subject, clip, FillRuleNonZero, OverlayRuleXor, SolverAuto)
	var xorArea int64
	for _, s := range xorShapes {
		xorArea += absArea(s.Outer)
		for _, h := range s.Holes {
			xorArea -= absArea(h)
		}
	}

	unionShapes := Compute(subject, clip, FillRuleNonZero, OverlayRuleUnion, SolverAuto)
	interShapes := Compute(subject, clip, FillRuleNonZero, OverlayRuleIntersect, SolverAuto)
	var unionArea, interArea int64
	for _, s := range unionShapes {
		unionArea += absArea(s.Outer)
	}
	for _, s := range interShapes {
		interArea += absArea(s.Outer)
	}

	if xorArea != unionArea-interArea {
		t.Errorf("xor area = %d, want union(%d) - intersect(%d) = %d", xorArea, unionArea, interArea, unionArea-interArea)
	}
}

func absArea(r Ring) int64 {
	a := signedAreaTwo(r)
	if a < 0 {
		a = -a
	}
	return a / 2
}

// normalizeRing rotates a ring to start at its lexicographically
// smallest point, so rings produced from different starting links can
// be compared for equality regardless of where tracing happened to
// begin.
func normalizeRing(r Ring) Ring {
	if len(r) == 0 {
		return r
	}
	minIdx := 0
	for i, p := range r {
		if p.Less(r[minIdx]) {
			minIdx = i
		}
	}
	out := make(Ring, len(r))
	for i := range r {
		out[i] = r[(minIdx+i)%len(r)]
	}
	return out
}
