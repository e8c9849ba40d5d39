package floatadapter

import "testing"

func TestPointAdapterRoundTripIsWithinOneUnit(t *testing.T) {
	adapter := NewPointAdapter([][2]float64{{0, 0}, {100, 50}})

	for _, p := range [][2]float64{{0, 0}, {100, 50}, {50, 25}, {1, 49}} {
		ip := adapter.ToInt(p[0], p[1])
		fx, fy := adapter.ToFloat(ip)
		if abs(fx-p[0]) > 1 || abs(fy-p[1]) > 1 {
			t.Errorf("round trip of %v through lattice gave (%v, %v), too far off", p, fx, fy)
		}
	}
}

func TestPointAdapterToIntPathPreservesLength(t *testing.T) {
	adapter := NewPointAdapter([][2]float64{{0, 0}, {10, 10}})
	path := [][2]float64{{0, 0}, {5, 5}, {10, 10}}
	ring := adapter.ToIntPath(path)
	if len(ring) != len(path) {
		t.Fatalf("got %d points, want %d", len(ring), len(path))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
