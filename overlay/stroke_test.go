package overlay

import "testing"

func TestStrokeStraightSegmentIsARectangle(t *testing.T) {
	path := []IntPoint{{0, 0}, {100, 0}}
	rings := Stroke(path, false, DefaultStrokeStyle(10))
	if len(rings) != 1 {
		t.Fatalf("got %d rings, want 1", len(rings))
	}
	got := absArea(rings[0])
	want := int64(100 * 10)
	if got != want {
		t.Errorf("area = %d, want %d", got, want)
	}
}

func TestStrokeClosedPathProducesOuterAndHole(t *testing.T) {
	square := rect(0, 0, 100, 100)
	rings := Stroke(square, true, DefaultStrokeStyle(10))
	if len(rings) != 2 {
		t.Fatalf("got %d rings, want 2 (outer + hole)", len(rings))
	}
	// The outer ring must bound more area than the inner one.
	a0, a1 := absArea(rings[0]), absArea(rings[1])
	if a0 <= a1 {
		t.Errorf("outer ring area %d does not exceed inner ring area %d; expected an annulus", a0, a1)
	}
}

// A tight zigzag offset at a wide width self-overlaps on its inner
// corners; Stroke must still return a simple (non-self-intersecting)
// result rather than the raw, possibly self-crossing offset ring.
func TestStrokeZigzagSelfOverlapStillYieldsSimpleRings(t *testing.T) {
	path := []IntPoint{
		{0, 0}, {10, 20}, {20, 0}, {30, 20}, {40, 0},
	}
	rings := Stroke(path, false, DefaultStrokeStyle(30))
	if len(rings) == 0 {
		t.Fatalf("expected at least one ring from a self-overlapping zigzag stroke")
	}
	for _, r := range rings {
		if len(r) < 3 {
			t.Errorf("ring %v is degenerate", r)
			continue
		}
		if hasSelfIntersection(r) {
			t.Errorf("ring %v still self-intersects after cleanup", r)
		}
	}
}

// hasSelfIntersection brute-force checks non-adjacent edges of a ring
// for a proper crossing, using the same straddle test the split solver
// itself relies on.
func hasSelfIntersection(r Ring) bool {
	n := len(r)
	for i := 0; i < n; i++ {
		a := NewXSegment(r[i], r[(i+1)%n])
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b := NewXSegment(r[j], r[(j+1)%n])
			if _, ok := crossingPoint(a, b); ok {
				return true
			}
		}
	}
	return false
}

func TestStrokeZeroWidthProducesNoRings(t *testing.T) {
	path := []IntPoint{{0, 0}, {10, 0}}
	if got := Stroke(path, false, DefaultStrokeStyle(0)); got != nil {
		t.Errorf("expected nil for zero width, got %v", got)
	}
}
