package overlay

import "math"

// crossingPoint tests two non-collinear segments for a proper
// transversal intersection and, if one exists, returns the lattice point
// nearest the true (real-valued) intersection. Ties are resolved
// round-half-to-even (§9's resolved Open Question on intersection
// rounding). A computed point that lands on a shared endpoint is not a
// new split and is reported as no intersection.
func crossingPoint(a, b XSegment) (IntPoint, bool) {
	d1 := areaTwo(b.A, b.B, a.A)
	d2 := areaTwo(b.A, b.B, a.B)
	d3 := areaTwo(a.A, a.B, b.A)
	d4 := areaTwo(a.A, a.B, b.B)
	if !straddles(d1, d2) || !straddles(d3, d4) {
		return IntPoint{}, false
	}

	ax1, ay1 := float64(a.A.X), float64(a.A.Y)
	ax2, ay2 := float64(a.B.X), float64(a.B.Y)
	bx1, by1 := float64(b.A.X), float64(b.A.Y)
	bx2, by2 := float64(b.B.X), float64(b.B.Y)

	rx, ry := ax2-ax1, ay2-ay1
	sx, sy := bx2-bx1, by2-by1
	denom := rx*sy - ry*sx
	if denom == 0 {
		return IntPoint{}, false
	}
	t := ((bx1-ax1)*sy - (by1-ay1)*sx) / denom
	p := IntPoint{X: roundHalfToEven(ax1 + t*rx), Y: roundHalfToEven(ay1 + t*ry)}

	if p == a.A || p == a.B || p == b.A || p == b.B {
		return IntPoint{}, false
	}
	return p, true
}

func straddles(d1, d2 int64) bool {
	return (d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)
}

// collinear reports whether a and b lie on the same infinite line.
func collinear(a, b XSegment) bool {
	return areaTwo(a.A, a.B, b.A) == 0 && areaTwo(a.A, a.B, b.B) == 0
}

// collinearOverlapSplits returns the endpoints of either segment that
// fall strictly inside the other, when the two segments are collinear
// and overlap. Each such point must become a split point in both
// segments so the scan structure never has to order two segments that
// partially overlap (§4.3).
func collinearOverlapSplits(a, b XSegment) []IntPoint {
	var pts []IntPoint
	if isStrictlyBetween(a, b.A) {
		pts = append(pts, b.A)
	}
	if isStrictlyBetween(a, b.B) {
		pts = append(pts, b.B)
	}
	if isStrictlyBetween(b, a.A) {
		pts = append(pts, a.A)
	}
	if isStrictlyBetween(b, a.B) {
		pts = append(pts, a.B)
	}
	return pts
}

// isStrictlyBetween reports whether p lies on segment seg's line,
// strictly between its two endpoints.
func isStrictlyBetween(seg XSegment, p IntPoint) bool {
	if p == seg.A || p == seg.B {
		return false
	}
	if areaTwo(seg.A, seg.B, p) != 0 {
		return false
	}
	if seg.A.X != seg.B.X {
		lo, hi := seg.A.X, seg.B.X
		if lo > hi {
			lo, hi = hi, lo
		}
		return p.X > lo && p.X < hi
	}
	lo, hi := seg.A.Y, seg.B.Y
	if lo > hi {
		lo, hi = hi, lo
	}
	return p.Y > lo && p.Y < hi
}

func roundHalfToEven(v float64) int32 {
	return int32(math.RoundToEven(v))
}
