package overlay

// IntPoint is a point on the bounded integer lattice the engine operates
// on. Valid coordinates are bounded to roughly ±2^29 so that products of
// coordinate differences fit in 64 bits without overflow; callers are
// responsible for keeping inputs within that domain (§7: coordinate
// overflow is undefined behavior, not a checked error).
type IntPoint struct {
	X, Y int32
}

// Less implements the total lexicographic order (x, then y) that XSegment
// canonicalization and the sweep rely on.
func (p IntPoint) Less(o IntPoint) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Greater is the complement of Less, used where the original reads more
// naturally as "comes after" (e.g. string-mode direction tests).
func (p IntPoint) Greater(o IntPoint) bool {
	return o.Less(p)
}

// SqrDistance returns the squared Euclidean distance between p and o.
func (p IntPoint) SqrDistance(o IntPoint) int64 {
	dx := int64(p.X) - int64(o.X)
	dy := int64(p.Y) - int64(o.Y)
	return dx*dx + dy*dy
}

// XSegment is an ordered pair (A, B) with the invariant A < B under the
// IntPoint order. The direction of the original edge is tracked
// separately via a winding count, not by this ordering.
type XSegment struct {
	A, B IntPoint
}

// NewXSegment canonicalizes two endpoints into an XSegment.
func NewXSegment(p0, p1 IntPoint) XSegment {
	if p0.Less(p1) {
		return XSegment{A: p0, B: p1}
	}
	return XSegment{A: p1, B: p0}
}

// Equal reports whether two segments share the same canonical endpoints.
func (s XSegment) Equal(o XSegment) bool {
	return s.A == o.A && s.B == o.B
}

// Less orders segments lexicographically by A then B; this is the order
// the input edge lists are pre-sorted into before the sweep (§4.3).
func (s XSegment) Less(o XSegment) bool {
	if s.A != o.A {
		return s.A.Less(o.A)
	}
	return s.B.Less(o.B)
}

// IsVertical reports whether the segment has zero x-extent. Vertical
// segments are never inserted into a sweep scan structure (§4.4 step 4).
func (s XSegment) IsVertical() bool {
	return s.A.X == s.B.X
}

// LineRange is an inclusive y extent, used to size the sweep's auxiliary
// structures and to report the y-span covered by a set of edges.
type LineRange struct {
	Min, Max int32
}

// Extend grows the range to include y, returning the updated range.
func (r LineRange) Extend(y int32) LineRange {
	if y < r.Min {
		r.Min = y
	}
	if y > r.Max {
		r.Max = y
	}
	return r
}

// areaTwo returns twice the signed area of the triangle (p, a, b). A
// positive result means a -> b winds counter-clockwise around p. All
// arithmetic is carried out on int64 differences of the int32
// coordinates, which cannot overflow within the documented ±2^29 domain.
func areaTwo(p, a, b IntPoint) int64 {
	adx := int64(a.X) - int64(p.X)
	ady := int64(a.Y) - int64(p.Y)
	bdx := int64(b.X) - int64(p.X)
	bdy := int64(b.Y) - int64(p.Y)
	return adx*bdy - ady*bdx
}

// isClockwisePoint reports whether the turn p -> a -> b is clockwise. C4
// uses this as the angular-sort comparator for segments sharing a common
// left endpoint, ordering them from lowest to highest outgoing slope.
func isClockwisePoint(p, a, b IntPoint) bool {
	return areaTwo(p, a, b) < 0
}

// IsUnderPoint reports whether p lies strictly above the infinite line
// through the segment — equivalently, that the segment passes under p.
// The sign of the twice-area avoids any division.
func (s XSegment) IsUnderPoint(p IntPoint) bool {
	return areaTwo(s.A, s.B, p) > 0
}

// IsUnderSegment defines a total order on non-crossing segments by
// vertical position, tie-broken by slope, evaluated at the shared x
// range of the two segments. It must stay consistent with a planar sweep
// evaluated anywhere within that shared range — which holds because C3
// guarantees no two segments cross except at a shared endpoint by the
// time this predicate is used for scan-structure ordering.
func (s XSegment) IsUnderSegment(o XSegment) bool {
	if s.Equal(o) {
		return false
	}
	switch {
	case s.A == o.A:
		// Same left endpoint: the one with the higher-slope tail is above.
		return areaTwo(s.A, s.B, o.B) > 0
	case s.A.Less(o.A):
		// s starts first; evaluate s's line at o's start point.
		return areaTwo(s.A, s.B, o.A) > 0
	default:
		// o starts first; evaluate o's line at s's start point and invert.
		return areaTwo(o.A, o.B, s.A) < 0
	}
}
