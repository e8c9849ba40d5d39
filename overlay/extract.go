package overlay

// Ring is one traced boundary: a closed sequence of points with no
// implicit closing edge (the last point connects back to the first).
type Ring []IntPoint

// Shape is an outer ring paired with the holes that lie inside it, the
// unit the public API returns. Hole binding (§4.6, hole_bind.go) is what
// assigns traced holes to their outer ring; ExtractShapes itself returns
// rings unpaired.
type Shape struct {
	Outer Ring
	Holes []Ring
}

// VectorEdge is one directed, filled edge of a built graph, the
// diagnostic unit ExtractVectors returns instead of closed rings — a
// supplement to the core boolean API for callers that want the raw
// filled topology rather than assembled shapes (§4 Supplemented
// Features).
type VectorEdge struct {
	A, B IntPoint
	Fill segmentFill
}

// ExtractVectors returns every directed link a built graph would walk
// under rule as a flat list of filled edges, without tracing them into
// closed rings.
func ExtractVectors[C WindingCount[C]](g *OverlayGraph[C], rule OverlayRule) []VectorEdge {
	var out []VectorEdge
	for i := range g.segs {
		visits := rule.visitCount(g.fills[i])
		if visits == 0 {
			continue
		}
		link := 2 * i
		if !startsRing(g, rule, link) {
			link = g.twin(link)
		}
		out = append(out, VectorEdge{A: g.from(link), B: g.to(link), Fill: g.fills[i]})
	}
	return out
}

// ExtractShapes walks a built graph and returns every boundary ring the
// given overlay rule implies, tagged with whether it traced as a hole
// (clockwise) or an outer ring (counter-clockwise). Hole binding pairs
// the two lists afterward (§4.5, §4.6).
func ExtractShapes[C WindingCount[C]](g *OverlayGraph[C], rule OverlayRule) (rings []Ring, isHole []bool) {
	n := len(g.segs)
	// visits[i] is 0 if segment i is not a boundary under this rule, 1
	// if it is (per rules.go).
	visits := make([]uint8, n)
	for i := 0; i < n; i++ {
		visits[i] = rule.visitCount(g.fills[i])
	}

	for startLink := 0; startLink < 2*n; startLink++ {
		segIdx := startLink / 2
		if visits[segIdx] == 0 {
			continue
		}
		if !startsRing(g, rule, startLink) {
			continue
		}
		ring, hole := traceRing(g, rule, visits, startLink)
		if len(ring) >= 3 {
			rings = append(rings, ring)
			isHole = append(isHole, hole)
		}
	}
	return rings, isHole
}

// startsRing reports whether walking link forward keeps the rule's
// filled side of its segment on the left of travel — the convention a
// directed link must satisfy to be part of a traced ring, so that every
// ring is only ever traced in one of its two directions: outer rings
// counter-clockwise, holes clockwise.
func startsRing[C WindingCount[C]](g *OverlayGraph[C], rule OverlayRule, link int) bool {
	top := rule.isFillTop(g.fillOf(link))
	if link%2 == 0 {
		return top
	}
	return !top
}

// traceRing walks directed links starting at startLink, always taking
// the next boundary link in clockwise order after the arriving link's
// twin, until it returns to startLink — the next-edge-around-a-face rule
// that keeps the face on the left, over node adjacency lists held in
// counter-clockwise angular order (§4.5).
func traceRing[C WindingCount[C]](g *OverlayGraph[C], rule OverlayRule, visits []uint8, startLink int) (Ring, bool) {
	var ring Ring
	link := startLink
	limit := 2*len(g.segs) + 1
	for {
		if visits[link/2] > 0 {
			visits[link/2]--
		}
		ring = append(ring, g.from(link))
		node := g.nodeIndex[g.to(link)]
		link = nextLinkAround(g, rule, node, g.twin(link))
		if link == startLink || len(ring) > limit {
			break
		}
	}
	hole := signedAreaTwo(ring) < 0
	return ring, hole
}

// nextLinkAround returns the first link clockwise from arriveTwin (that
// is, walking node's counter-clockwise adjacency list backwards) that is
// a boundary under rule and is directed with the filled side on its left
// (startsRing).
func nextLinkAround[C WindingCount[C]](g *OverlayGraph[C], rule OverlayRule, node, arriveTwin int) int {
	links := g.outLinks[node]
	n := len(links)
	for i, l := range links {
		if l != arriveTwin {
			continue
		}
		for k := 1; k < n; k++ {
			next := links[(i-k+n)%n]
			if rule.visitCount(g.fillOf(next)) > 0 && startsRing(g, rule, next) {
				return next
			}
		}
	}
	return links[0]
}

// signedAreaTwo returns twice the signed area of a ring: positive for a
// counter-clockwise ring, matching the convention that outer rings trace
// counter-clockwise and holes clockwise (§4.5).
func signedAreaTwo(ring Ring) int64 {
	var sum int64
	n := len(ring)
	for i := 0; i < n; i++ {
		p := ring[i]
		q := ring[(i+1)%n]
		sum += int64(p.X)*int64(q.Y) - int64(q.X)*int64(p.Y)
	}
	return sum
}
