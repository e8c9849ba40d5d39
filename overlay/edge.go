package overlay

import "sort"

// ShapeEdge is a single (XSegment, winding-count) record built from one
// edge of a contour. When two ShapeEdges share an XSegment they must be
// merged by summing their counts (§3); an edge whose merged count is
// empty is dropped before the split solver ever sees it.
type ShapeEdge[C WindingCount[C]] struct {
	Seg   XSegment
	Count C
}

// buildContourEdges turns one closed contour into oriented edges,
// removing consecutive duplicate points and collinear backtracking
// spikes first (§4.2 step 1). Fewer than three surviving points yields
// no edges at all — contours that degenerate to a point or a doubled-back
// line contribute nothing to the overlay.
func buildContourEdges[C WindingCount[C]](contour []IntPoint, direct, inverted C) []ShapeEdge[C] {
	pts := removeDegeneratePoints(contour)
	n := len(pts)
	if n < 3 {
		return nil
	}

	edges := make([]ShapeEdge[C], 0, n)
	p0 := pts[n-1]
	for _, p1 := range pts {
		seg := NewXSegment(p0, p1)
		count := inverted
		if p0.Less(p1) {
			count = direct
		}
		edges = append(edges, ShapeEdge[C]{Seg: seg, Count: count})
		p0 = p1
	}
	return edges
}

// removeDegeneratePoints drops consecutive duplicate points (including
// the implicit closing edge) and then repeatedly strips collinear
// backtracking spikes until no more can be removed.
func removeDegeneratePoints(contour []IntPoint) []IntPoint {
	cleaned := make([]IntPoint, 0, len(contour))
	for _, p := range contour {
		if len(cleaned) == 0 || cleaned[len(cleaned)-1] != p {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) > 1 && cleaned[0] == cleaned[len(cleaned)-1] {
		cleaned = cleaned[:len(cleaned)-1]
	}
	if len(cleaned) < 3 {
		return cleaned
	}

	for {
		n := len(cleaned)
		if n < 3 {
			return cleaned
		}
		out := make([]IntPoint, 0, n)
		changed := false
		for i := 0; i < n; i++ {
			prev := cleaned[(i-1+n)%n]
			cur := cleaned[i]
			next := cleaned[(i+1)%n]
			if prev == cur || cur == next {
				changed = true
				continue
			}
			if areaTwo(prev, cur, next) == 0 && isBacktrack(prev, cur, next) {
				changed = true
				continue
			}
			out = append(out, cur)
		}
		cleaned = out
		if !changed {
			return cleaned
		}
	}
}

// isBacktrack reports whether, given prev->cur->next are collinear, the
// path doubles back on itself at cur rather than continuing forward.
func isBacktrack(prev, cur, next IntPoint) bool {
	d1x, d1y := int64(cur.X)-int64(prev.X), int64(cur.Y)-int64(prev.Y)
	d2x, d2y := int64(next.X)-int64(cur.X), int64(next.Y)-int64(cur.Y)
	return d1x*d2x+d1y*d2y <= 0
}

// mergeEdges sorts a slice of ShapeEdges by XSegment and coalesces edges
// that share an XSegment by summing their winding counts, dropping any
// run whose summed count is empty (§3, §4.3 "coalesced").
func mergeEdges[C WindingCount[C]](edges []ShapeEdge[C]) []ShapeEdge[C] {
	if len(edges) == 0 {
		return nil
	}
	sortEdges(edges)

	out := make([]ShapeEdge[C], 0, len(edges))
	prev := edges[0]
	for _, next := range edges[1:] {
		if prev.Seg.Equal(next.Seg) {
			prev.Count = prev.Count.Add(next.Count)
			continue
		}
		if prev.Count.IsNotEmpty() {
			out = append(out, prev)
		}
		prev = next
	}
	if prev.Count.IsNotEmpty() {
		out = append(out, prev)
	}
	return out
}

func sortEdges[C WindingCount[C]](edges []ShapeEdge[C]) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Seg.Less(edges[j].Seg) })
}
