package overlay

// belowState is what the fill sweep's scan structure stores for a
// segment it has already processed: the segment itself (for ordering and
// for the is-under-point test) and the accumulated winding count just
// above it.
type belowState[C WindingCount[C]] struct {
	Seg XSegment
	Top C
}

// runFillSolver assigns each segment's 4-bit fill field by sweeping left
// to right, accumulating each side's winding count from its nearest
// scan-structure neighbor below, and testing the accumulated
// bottom/top counts against the fill rule (§4.4).
func runFillSolver[C WindingCount[C]](segments []Segment[C], rule FillRule, solver Solver) []Segment[C] {
	sortSegments(segments)

	scan := newScanSet[belowState[C]](solver, len(segments), func(a, b belowState[C]) bool {
		return a.Seg.IsUnderSegment(b.Seg)
	})

	i := 0
	for i < len(segments) {
		x := segments[i].Seg.A.X
		j := i
		for j < len(segments) && segments[j].Seg.A == segments[i].Seg.A {
			j++
		}

		scan.purge(func(s belowState[C]) bool { return s.Seg.B.X > x })

		// Segments sharing the same left endpoint are processed in
		// angular order around that point, lowest slope first; only the
		// first one queries the scan structure, and each later one takes
		// the top count left by the one before it as its bottom count
		// (§4.4 step 3).
		batch := segments[i:j]
		sortAngularBatch(batch)

		var bottom C
		if below, ok := scan.floorBelow(func(s belowState[C]) bool { return s.Seg.IsUnderPoint(batch[0].Seg.A) }); ok {
			bottom = below.Top
		}
		for k := range batch {
			seg := batch[k].Seg
			top, bits := batch[k].Count.FillBits(bottom, rule)
			batch[k].Fill = bits
			bottom = top
			// Verticals never enter the scan structure, which assumes
			// well-ordered slopes, but their fill bits are still computed
			// above like any other segment in the batch.
			if seg.IsVertical() {
				continue
			}
			scan.insert(belowState[C]{Seg: seg, Top: top})
		}
		i = j
	}

	return segments
}

// sortAngularBatch orders a run of segments sharing a left endpoint by
// angle around that point, lowest slope first — an insertion
// sort since these runs are almost always tiny (§4.4 step 3).
func sortAngularBatch[C WindingCount[C]](batch []Segment[C]) {
	for i := 1; i < len(batch); i++ {
		for j := i; j > 0 && isClockwisePoint(batch[j].Seg.A, batch[j-1].Seg.B, batch[j].Seg.B); j-- {
			batch[j], batch[j-1] = batch[j-1], batch[j]
		}
	}
}
