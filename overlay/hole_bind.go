package overlay

import "sort"

// idSegment is an outer-ring edge tagged with which outer ring it
// belongs to — the unit the hole binder's scan structure orders,
// directly grounded on the source's intrusive red-black tree scan
// structure over (segment, ring id) pairs (§4.7).
type idSegment struct {
	Seg   XSegment
	Outer int
}

// BindHoles assigns each traced hole ring to the outer ring whose
// interior contains it, by sweeping outer-ring edges left to right and,
// for each hole, finding the nearest outer edge strictly below a stable
// representative point on the hole (§4.6, §4.7).
func BindHoles(rings []Ring, isHole []bool) []Shape {
	var outers, holes []int
	for i, hole := range isHole {
		if hole {
			holes = append(holes, i)
		} else {
			outers = append(outers, i)
		}
	}

	shapes := make([]Shape, len(outers))
	outerOf := make(map[int]int, len(outers))
	for shapeIdx, ringIdx := range outers {
		shapes[shapeIdx] = Shape{Outer: rings[ringIdx]}
		outerOf[ringIdx] = shapeIdx
	}
	if len(holes) == 0 {
		return shapes
	}

	segs := make([]idSegment, 0, len(outers)*4)
	for _, ringIdx := range outers {
		ring := rings[ringIdx]
		n := len(ring)
		for i := 0; i < n; i++ {
			p0, p1 := ring[i], ring[(i+1)%n]
			if p0 == p1 {
				continue
			}
			segs = append(segs, idSegment{Seg: NewXSegment(p0, p1), Outer: ringIdx})
		}
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].Seg.Less(segs[j].Seg) })

	type holeAnchor struct {
		ring  int
		point IntPoint
	}
	anchors := make([]holeAnchor, len(holes))
	for i, ringIdx := range holes {
		anchors[i] = holeAnchor{ring: ringIdx, point: leftmostPoint(rings[ringIdx])}
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].point.Less(anchors[j].point) })

	scan := newScanSet[idSegment](SolverAuto, len(segs), func(a, b idSegment) bool { return a.Seg.IsUnderSegment(b.Seg) })

	si := 0
	for _, anchor := range anchors {
		scan.purge(func(s idSegment) bool { return s.Seg.B.X > anchor.point.X })
		for si < len(segs) && segs[si].Seg.A.X <= anchor.point.X {
			scan.insert(segs[si])
			si++
		}

		below, ok := scan.floorBelow(func(s idSegment) bool { return s.Seg.IsUnderPoint(anchor.point) })
		if !ok {
			// A hole with no enclosing outer ring is malformed input; it
			// is dropped rather than surfaced as an error (§7).
			continue
		}
		shapeIdx := outerOf[below.Outer]
		shapes[shapeIdx].Holes = append(shapes[shapeIdx].Holes, rings[anchor.ring])
	}
	return shapes
}

// leftmostPoint returns the ring point smallest under IntPoint's order —
// a stable representative point for binding, since the scan finds
// whatever outer edge sits directly below it regardless of which point
// on the ring is chosen.
func leftmostPoint(ring Ring) IntPoint {
	best := ring[0]
	for _, p := range ring[1:] {
		if p.Less(best) {
			best = p
		}
	}
	return best
}
