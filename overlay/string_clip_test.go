package overlay

import "testing"

// TestStringClipZigzagZPolyline mirrors the source's zigzag clipping
// scenario: a polyline that enters and leaves a rectangle twice,
// producing two runs strictly inside the rectangle and three runs
// strictly outside it.
func TestStringClipZigzagZPolyline(t *testing.T) {
	subjectRect := rect(0, 0, 10, 10)
	zigzag := Ring{
		{X: -5, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -5},
		{X: 8, Y: -5},
		{X: 8, Y: 2},
		{X: 25, Y: 2},
	}

	inside := clipZigzag(t, subjectRect, zigzag, DefaultClipRule())
	if len(inside) != 2 {
		t.Fatalf("inside clip: got %d runs, want 2", len(inside))
	}

	outside := clipZigzag(t, subjectRect, zigzag, ClipRule{Invert: true})
	if len(outside) != 3 {
		t.Fatalf("outside clip: got %d runs, want 3", len(outside))
	}
}

func clipZigzag(t *testing.T, subjectRect, path Ring, rule ClipRule) []Ring {
	t.Helper()
	so := NewStringOverlay(SolverAuto)
	so.AddSubjectPath(subjectRect)
	so.AddStringPath(path, false)
	return so.ClipLines(FillRuleNonZero, rule)
}

// TestStringClipBoundaryIncluded checks that a string segment running
// exactly along the subject boundary is dropped by default and kept
// when BoundaryIncluded is set.
func TestStringClipBoundaryIncluded(t *testing.T) {
	subjectRect := rect(0, 0, 10, 10)
	alongEdge := Ring{{X: 0, Y: 0}, {X: 10, Y: 0}}

	dropped := clipZigzag(t, subjectRect, alongEdge, DefaultClipRule())
	if len(dropped) != 0 {
		t.Fatalf("boundary segment without BoundaryIncluded: got %d runs, want 0", len(dropped))
	}

	kept := clipZigzag(t, subjectRect, alongEdge, ClipRule{BoundaryIncluded: true})
	if len(kept) != 1 {
		t.Fatalf("boundary segment with BoundaryIncluded: got %d runs, want 1", len(kept))
	}
}
