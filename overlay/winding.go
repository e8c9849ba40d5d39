package overlay

// WindingCount is the uniform contract both winding-count variants (the
// boolean ShapeCount and the string-mode ShapeCountString) satisfy, so
// that the split solver, fill solver, and graph builder can stay generic
// over which variant a given overlay uses (§9: "a two-variant type with
// a shared interface").
type WindingCount[C any] interface {
	IsNotEmpty() bool
	Add(other C) C
	Invert() C

	// FillBits computes this segment's top-side accumulated count (the
	// given bottom-side count plus this segment's own contribution) and
	// the 4-bit fill field implied by the bottom/top counts under the
	// given fill rule (§4.4).
	FillBits(bottom C, rule FillRule) (top C, bits segmentFill)
}

// ShapeCount is the boolean-mode winding count: a (subj, clip) pair of
// signed crossing counts. Addition is componentwise; inversion negates
// both.
type ShapeCount struct {
	Subj, Clip int32
}

// NewShapeCount builds a boolean winding count directly.
func NewShapeCount(subj, clip int32) ShapeCount {
	return ShapeCount{Subj: subj, Clip: clip}
}

// IsNotEmpty reports whether either component carries a nonzero count.
func (c ShapeCount) IsNotEmpty() bool {
	return c.Subj != 0 || c.Clip != 0
}

// Add returns the componentwise sum of two winding counts, used when two
// edges share an XSegment and must be coalesced (§3 ShapeEdge merge).
func (c ShapeCount) Add(o ShapeCount) ShapeCount {
	return ShapeCount{Subj: c.Subj + o.Subj, Clip: c.Clip + o.Clip}
}

// Invert negates both components: the count of the same edge walked in
// the opposite direction.
func (c ShapeCount) Invert() ShapeCount {
	return ShapeCount{Subj: -c.Subj, Clip: -c.Clip}
}

// FillBits accumulates both components past this segment and tests
// each side's subject and clip counts against the fill rule to produce
// the 4-bit fill field (§4.4).
func (c ShapeCount) FillBits(bottom ShapeCount, rule FillRule) (ShapeCount, segmentFill) {
	top := ShapeCount{Subj: bottom.Subj + c.Subj, Clip: bottom.Clip + c.Clip}
	var bits segmentFill
	if rule.inside(bottom.Subj) {
		bits |= fillSubjBottom
	}
	if rule.inside(top.Subj) {
		bits |= fillSubjTop
	}
	if rule.inside(bottom.Clip) {
		bits |= fillClipBottom
	}
	if rule.inside(top.Clip) {
		bits |= fillClipTop
	}
	return top, bits
}

// withShapeType returns the (direct, inverted) winding-count pair an
// edge should carry depending on whether p0 < p1 in the canonical order
// (§4.2 step 2).
func withShapeType(shapeType ShapeType) (direct, inverted ShapeCount) {
	switch shapeType {
	case ShapeTypeSubject:
		return ShapeCount{Subj: 1}, ShapeCount{Subj: -1}
	default:
		return ShapeCount{Clip: 1}, ShapeCount{Clip: -1}
	}
}

// String-mode clip mask bits: which traversal direction(s) a string
// segment's clip side permits.
const (
	stringForwardClip uint8 = 0b10
	stringBackClip    uint8 = 0b01
)

// ShapeCountString is the string-mode winding count: a signed subject
// crossing count paired with a 2-bit clip direction mask (forward/back),
// used when clipping open polylines against a closed polygon set (§3).
type ShapeCountString struct {
	Subj int32
	Clip uint8
}

// NewShapeCountString builds a string-mode winding count. The clip
// component collapses a signed delta into the forward/back mask: a
// positive delta marks "forward", negative marks "back", zero marks
// neither.
func NewShapeCountString(subj, clipDelta int32) ShapeCountString {
	var mask uint8
	switch {
	case clipDelta > 0:
		mask = stringForwardClip
	case clipDelta < 0:
		mask = stringBackClip
	}
	return ShapeCountString{Subj: subj, Clip: mask}
}

// IsNotEmpty reports whether either the subject count or the clip mask
// carries information.
func (c ShapeCountString) IsNotEmpty() bool {
	return c.Subj != 0 || c.Clip != 0
}

// Add combines two string winding counts: subject counts sum, clip masks
// OR together (either direction seen is recorded).
func (c ShapeCountString) Add(o ShapeCountString) ShapeCountString {
	return ShapeCountString{Subj: c.Subj + o.Subj, Clip: c.Clip | o.Clip}
}

// Invert negates the subject count and swaps the forward/back mask bits.
func (c ShapeCountString) Invert() ShapeCountString {
	b0 := c.Clip & stringBackClip
	b1 := c.Clip & stringForwardClip
	return ShapeCountString{Subj: -c.Subj, Clip: (b0 << 1) | (b1 >> 1)}
}

// FillBits accumulates the subject count past this segment the same way
// ShapeCount does, but tests the clip side directly against the
// accumulated forward/back direction mask instead of the fill rule: a
// string segment's clip side is "filled" wherever the polyline actually
// ran in that direction, not wherever a winding count happens to land
// (§4.4, §9 generalization note).
func (c ShapeCountString) FillBits(bottom ShapeCountString, rule FillRule) (ShapeCountString, segmentFill) {
	top := ShapeCountString{Subj: bottom.Subj + c.Subj, Clip: bottom.Clip | c.Clip}
	var bits segmentFill
	if rule.inside(bottom.Subj) {
		bits |= fillSubjBottom
	}
	if rule.inside(top.Subj) {
		bits |= fillSubjTop
	}
	if top.Clip&stringBackClip != 0 {
		bits |= fillClipBottom
	}
	if top.Clip&stringForwardClip != 0 {
		bits |= fillClipTop
	}
	return top, bits
}

// withShapeTypeString is the string-mode analog of withShapeType: the
// clip side carries the directional mask instead of a signed count.
func withShapeTypeString(shapeType ShapeType) (direct, inverted ShapeCountString) {
	switch shapeType {
	case ShapeTypeSubject:
		return ShapeCountString{Subj: 1}, ShapeCountString{Subj: -1}
	default:
		return ShapeCountString{Clip: stringForwardClip}, ShapeCountString{Clip: stringBackClip}
	}
}
