package overlay

import "testing"

func TestIntPointLess(t *testing.T) {
	cases := []struct {
		a, b IntPoint
		want bool
	}{
		{IntPoint{0, 0}, IntPoint{1, 0}, true},
		{IntPoint{1, 0}, IntPoint{0, 0}, false},
		{IntPoint{0, 0}, IntPoint{0, 1}, true},
		{IntPoint{0, 1}, IntPoint{0, 0}, false},
		{IntPoint{0, 0}, IntPoint{0, 0}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%+v.Less(%+v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNewXSegmentCanonicalizes(t *testing.T) {
	p0, p1 := IntPoint{5, 5}, IntPoint{0, 0}
	s := NewXSegment(p0, p1)
	if s.A != p1 || s.B != p0 {
		t.Errorf("NewXSegment(%v, %v) = %+v, want A=%v B=%v", p0, p1, s, p1, p0)
	}
}

func TestIsUnderSegmentTotalOrderAmongParallelLines(t *testing.T) {
	lower := NewXSegment(IntPoint{0, 0}, IntPoint{10, 0})
	upper := NewXSegment(IntPoint{0, 5}, IntPoint{10, 5})

	if !lower.IsUnderSegment(upper) {
		t.Errorf("expected lower segment to be under upper segment")
	}
	if upper.IsUnderSegment(lower) {
		t.Errorf("expected upper segment not to be under lower segment")
	}
}

func TestCrossingPointFindsCenterOfAnX(t *testing.T) {
	a := NewXSegment(IntPoint{0, 0}, IntPoint{10, 10})
	b := NewXSegment(IntPoint{0, 10}, IntPoint{10, 0})

	p, ok := crossingPoint(a, b)
	if !ok {
		t.Fatalf("expected a and b to cross")
	}
	if p != (IntPoint{5, 5}) {
		t.Errorf("crossingPoint = %v, want (5,5)", p)
	}
}

func TestCrossingPointNoneForParallelSegments(t *testing.T) {
	a := NewXSegment(IntPoint{0, 0}, IntPoint{10, 0})
	b := NewXSegment(IntPoint{0, 5}, IntPoint{10, 5})
	if _, ok := crossingPoint(a, b); ok {
		t.Errorf("expected parallel segments not to cross")
	}
}

func TestCollinearOverlapSplits(t *testing.T) {
	a := NewXSegment(IntPoint{0, 0}, IntPoint{10, 0})
	b := NewXSegment(IntPoint{5, 0}, IntPoint{15, 0})

	pts := collinearOverlapSplits(a, b)
	want := map[IntPoint]bool{{5, 0}: true, {10, 0}: true}
	if len(pts) != 2 {
		t.Fatalf("got %d split points, want 2: %v", len(pts), pts)
	}
	for _, p := range pts {
		if !want[p] {
			t.Errorf("unexpected split point %v", p)
		}
	}
}
