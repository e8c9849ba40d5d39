package overlay

import "testing"

func TestShapeCountInvertIsSelfInverse(t *testing.T) {
	c := ShapeCount{Subj: 3, Clip: -2}
	if got := c.Invert().Invert(); got != c {
		t.Errorf("Invert∘Invert = %+v, want %+v", got, c)
	}
}

func TestShapeCountAddAndFillBits(t *testing.T) {
	bottom := ShapeCount{Subj: 0, Clip: 0}
	self := ShapeCount{Subj: 1, Clip: 0}
	top, bits := self.FillBits(bottom, FillRuleNonZero)

	if top != (ShapeCount{Subj: 1, Clip: 0}) {
		t.Errorf("top = %+v, want {Subj:1}", top)
	}
	if bits&fillSubjTop == 0 {
		t.Errorf("expected fillSubjTop to be set")
	}
	if bits&fillSubjBottom != 0 {
		t.Errorf("expected fillSubjBottom to be clear")
	}
}

func TestShapeCountStringInvertSwapsDirectionBits(t *testing.T) {
	c := NewShapeCountString(0, 1) // forward
	inv := c.Invert()
	if inv.Clip != stringBackClip {
		t.Errorf("Invert() of forward mask = %02b, want back mask %02b", inv.Clip, stringBackClip)
	}
	if inv.Invert().Clip != c.Clip {
		t.Errorf("Invert∘Invert did not round-trip the clip mask")
	}
}

func TestFillRuleInside(t *testing.T) {
	cases := []struct {
		rule  FillRule
		count int32
		want  bool
	}{
		{FillRuleNonZero, 0, false},
		{FillRuleNonZero, -2, true},
		{FillRuleEvenOdd, 2, false},
		{FillRuleEvenOdd, 3, true},
		{FillRulePositive, -1, false},
		{FillRulePositive, 1, true},
		{FillRuleNegative, 1, false},
		{FillRuleNegative, -1, true},
	}
	for _, c := range cases {
		if got := c.rule.inside(c.count); got != c.want {
			t.Errorf("rule=%v count=%d: inside() = %v, want %v", c.rule, c.count, got, c.want)
		}
	}
}
