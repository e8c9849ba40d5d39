package overlay

import "sort"

// runSplitSolver repeatedly sweeps a sorted, merged edge list and cuts
// any pair of segments that cross at an interior point, until a pass
// produces no new splits or the iteration cap is reached (§4.3, §9's
// resolved Open Question on split convergence). Pieces that end up on
// the same XSegment are then coalesced by mergeEdges.
func runSplitSolver[C WindingCount[C]](edges []ShapeEdge[C], solver Solver) []ShapeEdge[C] {
	current := edges
	for pass := 0; pass < splitIterationCap; pass++ {
		next, didSplit := splitPass(current, solver)
		current = next
		if !didSplit {
			break
		}
	}
	return mergeEdges(current)
}

// splitPass performs one left-to-right sweep over a sorted edge list,
// maintaining a scan structure of segments active at the current x and
// testing each newly active segment against its immediate scan
// neighbors for a crossing (§4.3 step 2). Detected split points are
// collected per original segment and applied in a second pass, so a
// single sweep never has to re-sort mid-flight.
func splitPass[C WindingCount[C]](edges []ShapeEdge[C], solver Solver) ([]ShapeEdge[C], bool) {
	sortEdges(edges)

	splitsOf := make(map[XSegment][]IntPoint, len(edges))
	addSplit := func(seg XSegment, p IntPoint) {
		if p == seg.A || p == seg.B {
			return
		}
		splitsOf[seg] = append(splitsOf[seg], p)
	}

	active := newScanSet[XSegment](solver, len(edges), func(a, b XSegment) bool { return a.IsUnderSegment(b) })

	i := 0
	for i < len(edges) {
		x := edges[i].Seg.A.X
		j := i
		for j < len(edges) && edges[j].Seg.A.X == x {
			j++
		}

		active.purge(func(seg XSegment) bool { return seg.B.X > x })

		for k := i; k < j; k++ {
			seg := edges[k].Seg
			if seg.IsVertical() {
				continue
			}
			below, above, hasBelow, hasAbove := active.neighbors(seg)
			if hasBelow {
				testPair(seg, below, addSplit)
			}
			if hasAbove {
				testPair(seg, above, addSplit)
			}
			active.insert(seg)
		}
		i = j
	}

	// Vertical segments are never entered into the scan structure (its
	// ordering assumes a well-defined slope); they are rare enough in
	// practice that a direct test against every x-overlapping segment is
	// cheaper than generalizing the scan order to admit them.
	verticalSplits(edges, addSplit)

	if len(splitsOf) == 0 {
		return edges, false
	}

	out := make([]ShapeEdge[C], 0, len(edges)+len(splitsOf))
	for _, e := range edges {
		pts, ok := splitsOf[e.Seg]
		if !ok {
			out = append(out, e)
			continue
		}
		out = append(out, cutEdge(e, pts)...)
	}
	return out, true
}

// testPair checks two segments for a crossing — either a proper
// transversal intersection or a collinear overlap — and records any
// resulting split points against both.
func testPair(a, b XSegment, addSplit func(seg XSegment, p IntPoint)) {
	if a.Equal(b) {
		return
	}
	if collinear(a, b) {
		for _, p := range collinearOverlapSplits(a, b) {
			addSplit(a, p)
			addSplit(b, p)
		}
		return
	}
	if p, ok := crossingPoint(a, b); ok {
		addSplit(a, p)
		addSplit(b, p)
	}
}

// verticalSplits brute-force tests every vertical segment against every
// other segment whose x-range contains it.
func verticalSplits[C WindingCount[C]](edges []ShapeEdge[C], addSplit func(seg XSegment, p IntPoint)) {
	for _, ve := range edges {
		if !ve.Seg.IsVertical() {
			continue
		}
		v := ve.Seg
		for _, oe := range edges {
			o := oe.Seg
			if o.Equal(v) {
				continue
			}
			if o.B.X < v.A.X || o.A.X > v.A.X {
				continue
			}
			testPair(v, o, addSplit)
		}
	}
}

// cutEdge divides e.Seg at the given interior points (need not be sorted
// or deduplicated) into consecutive sub-edges that all carry e's
// original winding count — splitting a contour edge does not change
// which direction it contributed that count in, since every point on a
// straight segment orders consistently with its endpoints (§4.3).
func cutEdge[C WindingCount[C]](e ShapeEdge[C], points []IntPoint) []ShapeEdge[C] {
	pts := make([]IntPoint, 0, len(points)+2)
	seen := map[IntPoint]bool{e.Seg.A: true, e.Seg.B: true}
	pts = append(pts, e.Seg.A, e.Seg.B)
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

	out := make([]ShapeEdge[C], 0, len(pts)-1)
	for k := 0; k+1 < len(pts); k++ {
		out = append(out, ShapeEdge[C]{Seg: NewXSegment(pts[k], pts[k+1]), Count: e.Count})
	}
	return out
}
