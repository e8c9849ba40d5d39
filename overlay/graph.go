package overlay

import "sort"

// OverlayGraph is the planar subdivision built from a filled, split
// segment list: an index-only, pointer-free adjacency structure over the
// segment endpoints. Each node's incident directed links are held in
// counter-clockwise angular order so shape extraction can walk a ring boundary
// by always taking "the next link around this node" (§4.5). A single
// graph supports extraction under any OverlayRule without rebuilding,
// since the fill solver already baked a fixed FillRule's result into
// each segment's 4-bit fill field; only the rule-to-fill interpretation
// (rules.go's visitCount/isFillTop) varies per extraction.
type OverlayGraph[C WindingCount[C]] struct {
	segs   []XSegment
	fills  []segmentFill
	counts []C

	nodePoints []IntPoint
	nodeIndex  map[IntPoint]int
	// outLinks[n] holds every directed link id incident to node n
	// (2*segIdx for the A->B direction, 2*segIdx+1 for B->A), sorted
	// counter-clockwise starting at the positive-x axis.
	outLinks [][]int
}

// buildOverlayGraph constructs a graph from the fill solver's output.
// Degree-2 nodes ("Bridge") and degree->=3 nodes ("Cross", per the
// terminology of §4.5) need no special-case representation here: both
// fall out naturally from outLinks' length, and ring tracing treats
// every node identically.
func buildOverlayGraph[C WindingCount[C]](segments []Segment[C]) *OverlayGraph[C] {
	g := &OverlayGraph[C]{
		segs:      make([]XSegment, len(segments)),
		fills:     make([]segmentFill, len(segments)),
		counts:    make([]C, len(segments)),
		nodeIndex: make(map[IntPoint]int, len(segments)),
	}
	for i, s := range segments {
		g.segs[i] = s.Seg
		g.fills[i] = s.Fill
		g.counts[i] = s.Count
	}

	nodeOf := func(p IntPoint) int {
		if idx, ok := g.nodeIndex[p]; ok {
			return idx
		}
		idx := len(g.nodePoints)
		g.nodePoints = append(g.nodePoints, p)
		g.nodeIndex[p] = idx
		return idx
	}
	for _, s := range g.segs {
		nodeOf(s.A)
		nodeOf(s.B)
	}

	g.outLinks = make([][]int, len(g.nodePoints))
	for i, s := range g.segs {
		aNode := g.nodeIndex[s.A]
		bNode := g.nodeIndex[s.B]
		g.outLinks[aNode] = append(g.outLinks[aNode], 2*i)
		g.outLinks[bNode] = append(g.outLinks[bNode], 2*i+1)
	}
	for n, links := range g.outLinks {
		origin := g.nodePoints[n]
		sort.Slice(links, func(i, j int) bool {
			return counterClockwiseOrderLess(origin, g.to(links[i]), g.to(links[j]))
		})
	}
	return g
}

// directed link id l refers to segment l/2, direction l%2 (0 = A->B,
// 1 = B->A). twin(l) is the same segment walked the other way.
func (g *OverlayGraph[C]) segOf(link int) XSegment     { return g.segs[link/2] }
func (g *OverlayGraph[C]) fillOf(link int) segmentFill { return g.fills[link/2] }
func (g *OverlayGraph[C]) twin(link int) int           { return link ^ 1 }

// CountOf returns the winding count a segment carried out of the fill
// solver (as opposed to its derived fill bits) — used by string clipping
// to read a segment's own forward/back direction mask directly rather
// than the sweep-accumulated fill field (§4.9).
func (g *OverlayGraph[C]) CountOf(segIdx int) C { return g.counts[segIdx] }

// NumSegments returns how many segments the graph holds.
func (g *OverlayGraph[C]) NumSegments() int { return len(g.segs) }

// SegmentAt returns the segment and fill at index i, for callers (like
// ExtractVectors) that walk the graph directly instead of tracing rings.
func (g *OverlayGraph[C]) SegmentAt(i int) (XSegment, segmentFill) { return g.segs[i], g.fills[i] }

func (g *OverlayGraph[C]) from(link int) IntPoint {
	s := g.segOf(link)
	if link%2 == 0 {
		return s.A
	}
	return s.B
}

func (g *OverlayGraph[C]) to(link int) IntPoint {
	return g.from(g.twin(link))
}

// counterClockwiseOrderLess orders two directions from a common origin
// counter-clockwise, starting at the positive-x axis, without trigonometry:
// directions are first bucketed into the upper or lower half-plane
// (the positive x-axis itself counts as upper), then ordered within a
// half by the sign of their cross product.
func counterClockwiseOrderLess(origin, p, q IntPoint) bool {
	hp, hq := halfPlane(origin, p), halfPlane(origin, q)
	if hp != hq {
		return hp < hq
	}
	return areaTwo(origin, p, q) > 0
}

func halfPlane(origin, p IntPoint) int {
	dy := p.Y - origin.Y
	if dy > 0 || (dy == 0 && p.X > origin.X) {
		return 0
	}
	return 1
}
