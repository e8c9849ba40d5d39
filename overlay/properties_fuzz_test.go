package overlay

import "testing"

// FuzzUnionIsCommutative checks that Union(A, B) and Union(B, A) enclose
// the same total area for arbitrary axis-aligned rectangle pairs (§8
// algebraic-law properties).
func FuzzUnionIsCommutative(f *testing.F) {
	f.Add(int32(0), int32(0), int32(10), int32(10), int32(5), int32(5), int32(15), int32(15))
	f.Add(int32(0), int32(0), int32(10), int32(10), int32(20), int32(20), int32(30), int32(30))

	f.Fuzz(func(t *testing.T, ax0, ay0, ax1, ay1, bx0, by0, bx1, by1 int32) {
		a := clampRect(ax0, ay0, ax1, ay1)
		b := clampRect(bx0, by0, bx1, by1)

		ab := Compute([]Ring{a}, []Ring{b}, FillRuleNonZero, OverlayRuleUnion, SolverAuto)
		ba := Compute([]Ring{b}, []Ring{a}, FillRuleNonZero, OverlayRuleUnion, SolverAuto)

		if totalArea(ab) != totalArea(ba) {
			t.Errorf("union not commutative: area(A∪B)=%d area(B∪A)=%d", totalArea(ab), totalArea(ba))
		}
	})
}

// FuzzIntersectNeverExceedsEitherInput checks that the intersection of
// two rectangles never encloses more area than either input alone (§8).
func FuzzIntersectNeverExceedsEitherInput(f *testing.F) {
	f.Add(int32(0), int32(0), int32(10), int32(10), int32(5), int32(5), int32(15), int32(15))

	f.Fuzz(func(t *testing.T, ax0, ay0, ax1, ay1, bx0, by0, bx1, by1 int32) {
		a := clampRect(ax0, ay0, ax1, ay1)
		b := clampRect(bx0, by0, bx1, by1)

		inter := Compute([]Ring{a}, []Ring{b}, FillRuleNonZero, OverlayRuleIntersect, SolverAuto)
		interArea := totalArea(inter)
		areaA := absArea(a)
		areaB := absArea(b)

		if interArea > areaA || interArea > areaB {
			t.Errorf("intersection area %d exceeds an input area (A=%d, B=%d)", interArea, areaA, areaB)
		}
	})
}

// FuzzDifferenceUnchangedWhenDisjointFromClip checks that subtracting a
// shape sharing no area with the subject leaves the subject unchanged
// (§8 empty-clip property).
func FuzzDifferenceUnchangedWhenDisjointFromClip(f *testing.F) {
	f.Add(int32(0), int32(0), int32(10), int32(10))

	f.Fuzz(func(t *testing.T, x0, y0, x1, y1 int32) {
		a := clampRect(x0, y0, x1, y1)
		farAway := rect(1_000_000, 1_000_000, 1_000_010, 1_000_010)

		diff := Compute([]Ring{a}, []Ring{farAway}, FillRuleNonZero, OverlayRuleDifference, SolverAuto)

		if totalArea(diff) != absArea(a) {
			t.Errorf("difference against a disjoint clip changed area: got %d, want %d", totalArea(diff), absArea(a))
		}
	})
}

func totalArea(shapes []Shape) int64 {
	var sum int64
	for _, s := range shapes {
		sum += absArea(s.Outer)
		for _, h := range s.Holes {
			sum -= absArea(h)
		}
	}
	return sum
}

// clampRect turns four arbitrary int32s into a valid, small,
// non-degenerate axis-aligned rectangle so fuzz inputs stay within a
// range that produces interesting but bounded geometry.
func clampRect(x0, y0, x1, y1 int32) Ring {
	const lo, hi = -1000, 1000
	cx0, cx1 := clampSpread(x0, x1, lo, hi)
	cy0, cy1 := clampSpread(y0, y1, lo, hi)
	return rect(cx0, cy0, cx1, cy1)
}

func clampSpread(a, b int32, lo, hi int32) (int32, int32) {
	a = clampInt32(a, lo, hi)
	b = clampInt32(b, lo, hi)
	if a == b {
		b = a + 1
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
