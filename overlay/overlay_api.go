package overlay

// Overlay accumulates subject and clip contours before they are split,
// filled, and extracted. It carries no package-level state: every
// method only reads and returns its own receiver's fields, so Overlays
// built and consumed on different goroutines never interact (§5).
type Overlay struct {
	solver Solver
	edges  []ShapeEdge[ShapeCount]
}

// NewOverlay creates an empty Overlay using the given solver hint.
func NewOverlay(solver Solver) *Overlay {
	return &Overlay{solver: solver}
}

// AddPath adds one contour belonging to shapeType (§4.2).
func (o *Overlay) AddPath(path []IntPoint, shapeType ShapeType) {
	direct, inverted := withShapeType(shapeType)
	o.edges = append(o.edges, buildContourEdges(path, direct, inverted)...)
}

// AddPaths adds every contour in paths, all belonging to shapeType.
func (o *Overlay) AddPaths(paths []Ring, shapeType ShapeType) {
	for _, p := range paths {
		o.AddPath(p, shapeType)
	}
}

// AddShapes adds a full shape set (outer rings plus holes, §3); holes
// and outers are both plain contours to the edge builder, since a
// contour's winding direction — not an outer/hole tag — is what
// distinguishes them once edges are built.
func (o *Overlay) AddShapes(shapes []Shape, shapeType ShapeType) {
	for _, s := range shapes {
		o.AddPath(s.Outer, shapeType)
		for _, h := range s.Holes {
			o.AddPath(h, shapeType)
		}
	}
}

// BuildGraph runs the split and fill solvers under fillRule and returns
// the resulting graph. The same graph supports extraction under any
// OverlayRule without rebuilding, since only the rule-to-fill
// interpretation varies per extraction, not the fill itself (§4, §6).
func (o *Overlay) BuildGraph(fillRule FillRule) *OverlayGraph[ShapeCount] {
	merged := mergeEdges(o.edges)
	split := runSplitSolver(merged, o.solver)
	segments := segmentsFromEdges(split)
	segments = runFillSolver(segments, fillRule, o.solver)
	segments = filterEmptyOrFullyCovered(segments)
	return buildOverlayGraph(segments)
}

// Extract builds a graph under fillRule and extracts it under rule,
// returning fully hole-bound shapes (§6) — the one-shot entry point most
// callers use instead of managing BuildGraph/ExtractShapes/BindHoles
// separately.
func (o *Overlay) Extract(fillRule FillRule, rule OverlayRule) []Shape {
	g := o.BuildGraph(fillRule)
	rings, isHole := ExtractShapes(g, rule)
	return BindHoles(rings, isHole)
}

// Compute is the single-call API for the common case: overlay a subject
// and clip shape set directly without constructing an Overlay value
// (§6, supplementing the source's SingleFloatOverlay ergonomic API).
func Compute(subject, clip []Ring, fillRule FillRule, rule OverlayRule, solver Solver) []Shape {
	o := NewOverlay(solver)
	o.AddPaths(subject, ShapeTypeSubject)
	o.AddPaths(clip, ShapeTypeClip)
	return o.Extract(fillRule, rule)
}
