package overlay

import "testing"

func TestEncodeDecodeRingDeltaRoundTrips(t *testing.T) {
	ring := Ring{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {-50, 40}}
	xs, ys := EncodeRingDelta(ring)
	got := DecodeRingDelta(xs, ys)
	if len(got) != len(ring) {
		t.Fatalf("got %d points, want %d", len(got), len(ring))
	}
	for i := range ring {
		if got[i] != ring[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], ring[i])
		}
	}
}

func TestEncodeRingDeltaHandlesLargeRingWithoutTruncation(t *testing.T) {
	ring := make(Ring, 5000)
	var x, y int32
	for i := range ring {
		x += int32(i%7) - 3
		y += int32(i%5) - 2
		ring[i] = IntPoint{X: x, Y: y}
	}
	xs, ys := EncodeRingDelta(ring)
	got := DecodeRingDelta(xs, ys)
	if len(got) != len(ring) {
		t.Fatalf("got %d points, want %d", len(got), len(ring))
	}
	for i := range ring {
		if got[i] != ring[i] {
			t.Fatalf("point %d: got %v, want %v", i, got[i], ring[i])
		}
	}
}
