package overlay

import "math"

// LineCap selects how an open polyline's two free ends are capped when
// stroked (§4.8).
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects how a stroke's outline turns at an interior vertex
// (§4.8).
type LineJoin int

const (
	JoinBevel LineJoin = iota
	JoinMiter
	JoinRound
)

// StrokeStyle configures Stroke, mirroring the option-struct-plus-
// constructor idiom used throughout this package (§1.3).
type StrokeStyle struct {
	Width               float64
	Cap                 LineCap
	Join                LineJoin
	MiterLimit          float64
	RoundStepsPerCircle int
}

// DefaultStrokeStyle returns a butt-capped, bevel-joined style of the
// given width.
func DefaultStrokeStyle(width float64) StrokeStyle {
	return StrokeStyle{Width: width, Cap: CapButt, Join: JoinBevel, MiterLimit: 4, RoundStepsPerCircle: 16}
}

// Stroke builds the closed ring(s) approximating the area covered by
// drawing path (open unless closed is true) with the given style,
// rounding every generated vertex to the integer lattice (§4.8, grounded
// on the source's buffering/stroke/builder.rs and akhenakh-geo's
// BufferOperation sweep state). A stroked open path yields a single
// ring; a stroked closed path yields an outer ring and, when the style's
// width leaves a hole, the inner ring too.
//
// Offsetting can introduce self-intersections of its own — a concave
// join, a tight zigzag, or (for a closed path) the outer and inner sides
// overlapping when the width exceeds the path's own radius of curvature.
// Rather than return the raw offset rings, both sides are carried into
// the same split/fill/graph pipeline the rest of this package uses,
// exactly as akhenakh-geo's BufferOperation feeds its offset edges back
// into its builder, so the result is always a simple polygon set.
func Stroke(path []IntPoint, closed bool, style StrokeStyle) []Ring {
	pts := dedupe(path)
	if len(pts) < 2 {
		return nil
	}
	radius := style.Width / 2
	if radius <= 0 {
		return nil
	}

	leftSide := offsetSide(pts, closed, radius, style)
	rightSide := offsetSide(reversed(pts), closed, radius, style)

	if closed {
		return cleanStrokeRings(roundRing(leftSide), roundRing(rightSide))
	}

	ring := make([]floatPoint, 0, len(leftSide)+len(rightSide)+8)
	ring = append(ring, leftSide...)
	ring = append(ring, capArc(pts[len(pts)-1], leftSide[len(leftSide)-1], rightSide[0], radius, style)...)
	ring = append(ring, rightSide...)
	ring = append(ring, capArc(pts[0], rightSide[len(rightSide)-1], leftSide[0], radius, style)...)
	return cleanStrokeRings(roundRing(ring))
}

// cleanStrokeRings feeds the rounded offset rings into a fresh overlay as
// subject contours — both sides carrying winding +1/-1 from their own
// point order — and extracts their union under the non-zero rule,
// resolving whatever self-overlap the offsetting left behind into a
// simple shape. Holes left by a closed path's inner side survive the
// round trip through BindHoles.
func cleanStrokeRings(rings ...Ring) []Ring {
	o := NewOverlay(SolverAuto)
	o.AddPaths(rings, ShapeTypeSubject)
	shapes := o.Extract(FillRuleNonZero, OverlayRuleUnion)

	out := make([]Ring, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, s.Outer)
		out = append(out, s.Holes...)
	}
	return out
}

type floatPoint struct{ X, Y float64 }

func dedupe(path []IntPoint) []IntPoint {
	out := make([]IntPoint, 0, len(path))
	for _, p := range path {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}

func reversed(path []IntPoint) []IntPoint {
	out := make([]IntPoint, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}

// offsetSide walks path left to right, offsetting every segment by
// radius to its left, and inserting a join at every interior vertex
// (and, if closed, at the wrap-around vertex too).
func offsetSide(path []IntPoint, closed bool, radius float64, style StrokeStyle) []floatPoint {
	n := len(path)
	segCount := n - 1
	if closed {
		segCount = n
	}
	normals := make([]floatPoint, segCount)
	for i := 0; i < segCount; i++ {
		a := toFloat(path[i])
		b := toFloat(path[(i+1)%n])
		normals[i] = leftNormal(a, b)
	}

	var out []floatPoint
	appendOffset := func(p IntPoint, normal floatPoint) {
		fp := toFloat(p)
		out = append(out, floatPoint{fp.X + normal.X*radius, fp.Y + normal.Y*radius})
	}

	start := 0
	if !closed {
		appendOffset(path[0], normals[0])
		start = 1
	}
	for i := start; i < segCount; i++ {
		prev := normals[(i-1+segCount)%segCount]
		cur := normals[i]
		vertex := path[i%n]
		out = append(out, joinPoints(toFloat(vertex), prev, cur, radius, style)...)
	}
	if !closed {
		appendOffset(path[n-1], normals[segCount-1])
	}
	return out
}

func toFloat(p IntPoint) floatPoint { return floatPoint{float64(p.X), float64(p.Y)} }

// leftNormal returns the unit normal to a->b that points to its left.
func leftNormal(a, b floatPoint) floatPoint {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return floatPoint{}
	}
	return floatPoint{-dy / length, dx / length}
}

// joinPoints returns the offset vertex/vertices connecting the end of
// one segment's offset to the start of the next, per the style's join
// kind.
func joinPoints(vertex floatPoint, prevNormal, curNormal floatPoint, radius float64, style StrokeStyle) []floatPoint {
	p0 := floatPoint{vertex.X + prevNormal.X*radius, vertex.Y + prevNormal.Y*radius}
	p1 := floatPoint{vertex.X + curNormal.X*radius, vertex.Y + curNormal.Y*radius}
	cross := prevNormal.X*curNormal.Y - prevNormal.Y*curNormal.X
	if cross >= 0 {
		// Convex turn relative to the offset side: the two offset points
		// already meet or overlap without a gap.
		return []floatPoint{p0, p1}
	}
	switch style.Join {
	case JoinRound:
		return arcBetween(vertex, prevNormal, curNormal, radius, style.RoundStepsPerCircle)
	case JoinMiter:
		if m, ok := miterPoint(vertex, prevNormal, curNormal, radius, style.MiterLimit); ok {
			return []floatPoint{p0, m, p1}
		}
		return []floatPoint{p0, p1}
	default: // JoinBevel
		return []floatPoint{p0, p1}
	}
}

// miterPoint returns the sharp-corner point where two offset edges would
// meet, or ok=false if the turn is too sharp for the miter limit.
func miterPoint(vertex, n0, n1 floatPoint, radius, limit float64) (floatPoint, bool) {
	mx, my := n0.X+n1.X, n0.Y+n1.Y
	mLen := math.Hypot(mx, my)
	if mLen == 0 {
		return floatPoint{}, false
	}
	mx, my = mx/mLen, my/mLen
	cosHalf := n0.X*mx + n0.Y*my
	if cosHalf <= 0 {
		return floatPoint{}, false
	}
	miterLen := radius / cosHalf
	if miterLen/radius > limit {
		return floatPoint{}, false
	}
	return floatPoint{vertex.X + mx*miterLen, vertex.Y + my*miterLen}, true
}

// arcBetween tessellates a circular arc of the given radius around
// vertex, from the direction of n0 to the direction of n1.
func arcBetween(vertex floatPoint, n0, n1 floatPoint, radius float64, stepsPerCircle int) []floatPoint {
	if stepsPerCircle < 3 {
		stepsPerCircle = 16
	}
	a0 := math.Atan2(n0.Y, n0.X)
	a1 := math.Atan2(n1.Y, n1.X)
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	steps := int(float64(stepsPerCircle) * (a1 - a0) / (2 * math.Pi))
	if steps < 1 {
		steps = 1
	}
	out := make([]floatPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		out = append(out, floatPoint{vertex.X + math.Cos(a)*radius, vertex.Y + math.Sin(a)*radius})
	}
	return out
}

// capArc closes an open path's free end, connecting the left-side
// offset endpoint to the right-side offset endpoint, per the style's cap
// kind.
func capArc(center IntPoint, from, to floatPoint, radius float64, style StrokeStyle) []floatPoint {
	switch style.Cap {
	case CapRound:
		c := toFloat(center)
		n0 := floatPoint{(from.X - c.X) / radius, (from.Y - c.Y) / radius}
		n1 := floatPoint{(to.X - c.X) / radius, (to.Y - c.Y) / radius}
		return arcBetween(c, n0, n1, radius, style.RoundStepsPerCircle)
	case CapSquare:
		c := toFloat(center)
		dir := floatPoint{-(from.Y - c.Y) / radius, (from.X - c.X) / radius}
		// Extend outward along the path direction, then straight across.
		return []floatPoint{
			{from.X + dir.X*radius, from.Y + dir.Y*radius},
			{to.X + dir.X*radius, to.Y + dir.Y*radius},
		}
	default: // CapButt
		return nil
	}
}

// roundRing rounds every tessellated float point to the integer lattice
// (round-half-to-even, matching the rest of the package's rounding
// convention) and drops consecutive duplicates.
func roundRing(pts []floatPoint) Ring {
	out := make(Ring, 0, len(pts))
	for _, p := range pts {
		ip := IntPoint{X: roundHalfToEven(p.X), Y: roundHalfToEven(p.Y)}
		if len(out) == 0 || out[len(out)-1] != ip {
			out = append(out, ip)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
