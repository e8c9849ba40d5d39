package overlay

// ClipRule configures polyline clipping against a closed polygon set
// (§4.9): Invert clips to the outside of the subject shapes instead of
// the inside; BoundaryIncluded keeps string segments that run exactly
// along the polygon boundary rather than discarding them.
type ClipRule struct {
	Invert           bool
	BoundaryIncluded bool
}

// DefaultClipRule returns the ordinary "keep the parts inside, drop the
// boundary" rule.
func DefaultClipRule() ClipRule { return ClipRule{} }

// StringOverlay accumulates polygon (subject) contours and open or
// closed polyline (string) paths before clipping (§4.9, grounded on the
// source's string/overlay.rs and string/clip.rs).
type StringOverlay struct {
	solver Solver
	edges  []ShapeEdge[ShapeCountString]
}

// NewStringOverlay creates an empty StringOverlay.
func NewStringOverlay(solver Solver) *StringOverlay {
	return &StringOverlay{solver: solver}
}

// AddSubjectPath adds one closed polygon contour that polylines are
// clipped against.
func (s *StringOverlay) AddSubjectPath(path []IntPoint) {
	direct, inverted := withShapeTypeString(ShapeTypeSubject)
	s.edges = append(s.edges, buildContourEdges(path, direct, inverted)...)
}

// AddSubjectPaths adds every contour in paths as subject geometry.
func (s *StringOverlay) AddSubjectPaths(paths []Ring) {
	for _, p := range paths {
		s.AddSubjectPath(p)
	}
}

// AddStringPath adds one polyline, open unless closed is true. Unlike a
// subject contour, a string path keeps its direction: each consecutive
// pair of points becomes a directed segment carrying a forward or back
// clip bit depending on which way it runs relative to canonical
// (A < B) order, with no implicit closing edge unless closed is set
// (§4.9, §4 Supplemented Features: open/closed string paths as one
// entry point).
func (s *StringOverlay) AddStringPath(path []IntPoint, closed bool) {
	n := len(path)
	if n < 2 {
		return
	}
	limit := n - 1
	if closed {
		limit = n
	}
	for i := 0; i < limit; i++ {
		p0, p1 := path[i], path[(i+1)%n]
		if p0 == p1 {
			continue
		}
		count := NewShapeCountString(0, -1)
		if p0.Less(p1) {
			count = NewShapeCountString(0, 1)
		}
		s.edges = append(s.edges, ShapeEdge[ShapeCountString]{Seg: NewXSegment(p0, p1), Count: count})
	}
}

// AddStringPaths adds several polylines at once; closed[i] marks whether
// paths[i] is closed, defaulting to open when closed is shorter than
// paths.
func (s *StringOverlay) AddStringPaths(paths []Ring, closed []bool) {
	for i, p := range paths {
		c := false
		if i < len(closed) {
			c = closed[i]
		}
		s.AddStringPath(p, c)
	}
}

// BuildGraph runs the split and fill solvers over the combined subject
// and string edges.
func (s *StringOverlay) BuildGraph(fillRule FillRule) *OverlayGraph[ShapeCountString] {
	merged := mergeEdges(s.edges)
	split := runSplitSolver(merged, s.solver)
	segments := segmentsFromEdges(split)
	segments = runFillSolver(segments, fillRule, s.solver)
	return buildOverlayGraph(segments)
}

// ClipLines clips every string path previously added against the
// subject shape set under rule, returning each surviving sub-path as an
// independent polyline. This is the literal shape of spec's S6 boundary
// scenario: a rectangle clipping a Z-shaped polyline into separate
// inside/outside runs (§4.9, §8).
func (s *StringOverlay) ClipLines(fillRule FillRule, rule ClipRule) []Ring {
	g := s.BuildGraph(fillRule)
	return clipStringGraph(g, rule)
}

// directedSeg is one kept, correctly-oriented string segment awaiting
// stitching into a polyline.
type directedSeg struct {
	A, B IntPoint
}

// clipStringGraph walks every segment that carries a nonzero clip mask
// (i.e. came from a string path, not a subject contour) and keeps the
// ones whose subject-side fill matches rule, re-orienting each to its
// original traversal direction and stitching consecutive kept segments
// into polylines.
func clipStringGraph(g *OverlayGraph[ShapeCountString], rule ClipRule) []Ring {
	var segs []directedSeg
	for i := 0; i < g.NumSegments(); i++ {
		seg, fill := g.SegmentAt(i)
		direction := clipDirection(g.CountOf(i))
		if direction == directionNone {
			continue
		}
		if !clipSegmentKept(fill, rule) {
			continue
		}
		a, b := seg.A, seg.B
		if direction == directionBack {
			a, b = b, a
		}
		segs = append(segs, directedSeg{A: a, B: b})
		if direction == directionBoth {
			segs = append(segs, directedSeg{A: b, B: a})
		}
	}
	return stitchPolylines(segs)
}

// clipDir is the 4-state direction a string segment can run: neither way
// (not a string segment at all), forward only, back only, or both ways
// (two coincident string segments running opposite directions) —
// mirroring the source's Direction enum.
type clipDir int

const (
	directionNone clipDir = iota
	directionForward
	directionBack
	directionBoth
)

// clipDirection reads a string segment's own forward/back mask — not
// the sweep-accumulated fill field, which tracks subject insideness, not
// string direction.
func clipDirection(count ShapeCountString) clipDir {
	fwd := count.Clip&stringForwardClip != 0
	back := count.Clip&stringBackClip != 0
	switch {
	case fwd && back:
		return directionBoth
	case fwd:
		return directionForward
	case back:
		return directionBack
	default:
		return directionNone
	}
}

// clipSegmentKept reports whether a string segment's subject-side fill
// means it should survive clipping under rule.
func clipSegmentKept(fill segmentFill, rule ClipRule) bool {
	top := fill&fillSubjTop != 0
	bottom := fill&fillSubjBottom != 0
	inside := top || bottom
	onBoundary := top != bottom
	if onBoundary {
		return rule.BoundaryIncluded
	}
	if rule.Invert {
		return !inside
	}
	return inside
}

// stitchPolylines joins directed segments sharing an endpoint into the
// longest possible runs, producing one Ring per maximal run. A Ring
// returned here may be open (its first and last points differ), since
// string output is polylines, not closed boundaries.
func stitchPolylines(segs []directedSeg) []Ring {
	if len(segs) == 0 {
		return nil
	}
	startsAt := make(map[IntPoint]int, len(segs))
	for i, s := range segs {
		startsAt[s.A] = i
	}
	hasIncoming := make(map[IntPoint]bool, len(segs))
	for _, s := range segs {
		hasIncoming[s.B] = true
	}

	used := make([]bool, len(segs))
	var out []Ring
	for i, s := range segs {
		if used[i] || hasIncoming[s.A] {
			continue
		}
		ring := Ring{s.A, s.B}
		used[i] = true
		cur := s.B
		for {
			j, ok := startsAt[cur]
			if !ok || used[j] {
				break
			}
			used[j] = true
			ring = append(ring, segs[j].B)
			cur = segs[j].B
		}
		out = append(out, ring)
	}
	// Whatever remains is part of a cycle with no clear start; emit each
	// leftover segment's own run starting arbitrarily at its own head.
	for i, s := range segs {
		if used[i] {
			continue
		}
		ring := Ring{s.A, s.B}
		used[i] = true
		cur := s.B
		for {
			j, ok := startsAt[cur]
			if !ok || used[j] {
				break
			}
			used[j] = true
			ring = append(ring, segs[j].B)
			cur = segs[j].B
		}
		out = append(out, ring)
	}
	return out
}
