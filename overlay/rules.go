package overlay

// FillRule selects how winding counts are turned into an inside/outside
// test. Wire ordering matches spec §6.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
	FillRulePositive
	FillRuleNegative
)

// ShapeType distinguishes the subject from the clip shape while building
// edges (§3 ShapeEdge, §4.2). Intersect, Union and Xor are commutative
// with respect to which side is Subject vs Clip; Subject, Clip,
// Difference and InverseDifference are not.
type ShapeType int

const (
	ShapeTypeSubject ShapeType = iota
	ShapeTypeClip
)

// OverlayRule selects which boolean combination to extract from a built
// graph (§6). Subject/Clip extract one input unmodified (after splitting
// and filling), useful for round-tripping (§8 property 5).
type OverlayRule int

const (
	OverlayRuleSubject OverlayRule = iota
	OverlayRuleClip
	OverlayRuleIntersect
	OverlayRuleUnion
	OverlayRuleDifference
	OverlayRuleInverseDifference
	OverlayRuleXor
)

// segmentFill is the 4-bit per-segment fill field: one bit per
// (side x role) — subject-above, subject-below, clip-above, clip-below.
type segmentFill uint8

const (
	fillSubjTop segmentFill = 1 << iota
	fillSubjBottom
	fillClipTop
	fillClipBottom

	fillNone     segmentFill = 0
	fillSubjBoth             = fillSubjTop | fillSubjBottom
	fillClipBoth             = fillClipTop | fillClipBottom
)

// inside reports whether a raw signed winding count is "inside" under
// this fill rule (§6).
func (r FillRule) inside(count int32) bool {
	switch r {
	case FillRuleEvenOdd:
		return count%2 != 0
	case FillRulePositive:
		return count > 0
	case FillRuleNegative:
		return count < 0
	default: // FillRuleNonZero
		return count != 0
	}
}

// visitCount reports whether the shape extractor should traverse this
// link at all under the given rule: 0 (discard, not a boundary) or 1
// (the two sides disagree on insideness, so it bounds a ring).
func (r OverlayRule) visitCount(fill segmentFill) uint8 {
	subjTop := fill&fillSubjTop != 0
	subjBot := fill&fillSubjBottom != 0
	clipTop := fill&fillClipTop != 0
	clipBot := fill&fillClipBottom != 0

	switch r {
	case OverlayRuleSubject:
		if subjTop != subjBot {
			return 1
		}
	case OverlayRuleClip:
		if clipTop != clipBot {
			return 1
		}
	case OverlayRuleIntersect:
		in0 := subjTop && clipTop
		in1 := subjBot && clipBot
		if in0 != in1 {
			return 1
		}
	case OverlayRuleUnion:
		in0 := subjTop || clipTop
		in1 := subjBot || clipBot
		if in0 != in1 {
			return 1
		}
	case OverlayRuleDifference:
		in0 := subjTop && !clipTop
		in1 := subjBot && !clipBot
		if in0 != in1 {
			return 1
		}
	case OverlayRuleInverseDifference:
		in0 := clipTop && !subjTop
		in1 := clipBot && !subjBot
		if in0 != in1 {
			return 1
		}
	case OverlayRuleXor:
		in0 := subjTop != clipTop
		in1 := subjBot != clipBot
		if in0 != in1 {
			return 1
		}
	}
	return 0
}

// isFillTop reports whether the "top" (above) side of the given fill is
// the filled side under this rule. The shape extractor (startsRing) uses
// this to pick which direction of a link a ring is traced in: with the
// top filled, the ring runs A->B, keeping the filled side on its left.
func (r OverlayRule) isFillTop(fill segmentFill) bool {
	subjTop := fill&fillSubjTop != 0
	clipTop := fill&fillClipTop != 0

	switch r {
	case OverlayRuleSubject:
		return subjTop
	case OverlayRuleClip:
		return clipTop
	case OverlayRuleIntersect:
		return subjTop && clipTop
	case OverlayRuleUnion:
		return subjTop || clipTop
	case OverlayRuleDifference:
		return subjTop && !clipTop
	case OverlayRuleInverseDifference:
		return clipTop && !subjTop
	case OverlayRuleXor:
		return subjTop != clipTop
	}
	return false
}
