package floatadapter

import "github.com/go-overlay/overlay2d/overlay"

// Overlay is the one-shot float64 convenience entry point: adapt both
// shape sets onto a shared lattice, run the boolean operation, and
// convert the result back to float64 contours, all in one call (§4
// Supplemented Features, grounded on the source's float/single.rs
// SingleFloatOverlay).
func Overlay(subject, clip [][][2]float64, fillRule overlay.FillRule, rule overlay.OverlayRule, solver overlay.Solver) [][][2]float64 {
	union := make([][][2]float64, 0, len(subject)+len(clip))
	union = append(union, subject...)
	union = append(union, clip...)
	adapter := NewPointAdapter(union...)

	subjectRings := adapter.ToIntPaths(subject)
	clipRings := adapter.ToIntPaths(clip)

	shapes := overlay.Compute(subjectRings, clipRings, fillRule, rule, solver)

	out := make([][][2]float64, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, adapter.ToFloatPath(s.Outer))
		for _, h := range s.Holes {
			out = append(out, adapter.ToFloatPath(h))
		}
	}
	return out
}
