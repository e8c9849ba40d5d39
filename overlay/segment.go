package overlay

// Segment is an XSegment carrying a winding count and, once the fill
// solver has run, a 4-bit fill field. Segments are stored sorted by
// their XSegment A endpoint (§3).
type Segment[C WindingCount[C]] struct {
	Seg   XSegment
	Count C
	Fill  segmentFill
}

// segmentsFromEdges converts a sorted, merged ShapeEdge list into the
// Segment list the fill solver operates on. Fill bits start at zero and
// are assigned in place by runFillSolver.
func segmentsFromEdges[C WindingCount[C]](edges []ShapeEdge[C]) []Segment[C] {
	segments := make([]Segment[C], len(edges))
	for i, e := range edges {
		segments[i] = Segment[C]{Seg: e.Seg, Count: e.Count}
	}
	return segments
}

// filterEmptyOrFullyCovered drops segments whose fill means they cannot
// bound any region under any rule: no coverage at all, or covered by a
// shape on both sides (both top and bottom marked for the same role,
// which happens for a collapsed sliver where a shape folds back over
// itself). When anything was removed, surviving segments are re-sorted
// by XSegment, since the fill solver's angular ordering of segments
// sharing a left endpoint leaves the list out of XSegment order.
func filterEmptyOrFullyCovered[C WindingCount[C]](segments []Segment[C]) []Segment[C] {
	out := segments[:0]
	removed := false
	for _, s := range segments {
		if s.Fill == fillNone || s.Fill == fillSubjBoth || s.Fill == fillClipBoth {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if removed {
		sortSegments(out)
	}
	return out
}

func sortSegments[C WindingCount[C]](segments []Segment[C]) {
	insertionSortSegments(segments)
}

// insertionSortSegments keeps the scan list small-N friendly: after
// filtering, the list is already nearly sorted (it is a subsequence of a
// sorted list), so insertion sort avoids the overhead of a full
// comparison sort for the common case.
func insertionSortSegments[C WindingCount[C]](segments []Segment[C]) {
	for i := 1; i < len(segments); i++ {
		for j := i; j > 0 && segments[j].Seg.Less(segments[j-1].Seg); j-- {
			segments[j], segments[j-1] = segments[j-1], segments[j]
		}
	}
}
