// Package floatadapter bridges float64 geometry onto the overlay
// package's int32 lattice: it computes a union bounding box over every
// point set involved in an operation, builds a PointAdapter from it, and
// converts points and rings through that adapter in both directions
// (§4's float-to-int boundary, grounded on the source's
// core/float_overlay.rs).
package floatadapter

import (
	"math"

	"github.com/go-overlay/overlay2d/overlay"
)

// latticeBits is how many bits of the int32 coordinate space a
// PointAdapter uses, leaving headroom below int32's own range so sums
// and differences of adapted coordinates never approach overflow.
const latticeBits = 24

var latticeSpan = float64(int64(1) << latticeBits)

const latticeHalf = int32(1) << (latticeBits - 1)

// PointAdapter maps a float64 bounding box onto the overlay engine's
// int32 lattice, preserving roughly latticeBits bits of precision across
// the box, and converts points back and forth through that mapping.
type PointAdapter struct {
	minX, minY           float64
	scaleX, scaleY       float64
	invScaleX, invScaleY float64
}

// NewPointAdapter builds an adapter covering the union bounding box of
// every point across every given point set — typically a subject set
// and a clip set, so that both map onto the same lattice (§4).
func NewPointAdapter(pointSets ...[][2]float64) PointAdapter {
	minX, minY, maxX, maxY := boundsOf(pointSets)
	return newPointAdapterFromBounds(minX, minY, maxX, maxY)
}

func newPointAdapterFromBounds(minX, minY, maxX, maxY float64) PointAdapter {
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	scaleX := latticeSpan / spanX
	scaleY := latticeSpan / spanY
	return PointAdapter{
		minX: minX, minY: minY,
		scaleX: scaleX, scaleY: scaleY,
		invScaleX: 1 / scaleX, invScaleY: 1 / scaleY,
	}
}

// ToInt converts one float64 point into the adapter's integer lattice,
// rounding half to even to match the overlay engine's own rounding
// convention.
func (a PointAdapter) ToInt(x, y float64) overlay.IntPoint {
	ix := int32(math.RoundToEven((x-a.minX)*a.scaleX)) - latticeHalf
	iy := int32(math.RoundToEven((y-a.minY)*a.scaleY)) - latticeHalf
	return overlay.IntPoint{X: ix, Y: iy}
}

// ToFloat converts one integer lattice point back to float64 — the
// inverse of ToInt, exact up to the rounding error ToInt introduced.
func (a PointAdapter) ToFloat(p overlay.IntPoint) (x, y float64) {
	x = float64(int64(p.X)+int64(latticeHalf))*a.invScaleX + a.minX
	y = float64(int64(p.Y)+int64(latticeHalf))*a.invScaleY + a.minY
	return x, y
}

// ToIntPath converts a float64 polyline/contour into lattice points.
func (a PointAdapter) ToIntPath(points [][2]float64) overlay.Ring {
	out := make(overlay.Ring, len(points))
	for i, p := range points {
		out[i] = a.ToInt(p[0], p[1])
	}
	return out
}

// ToIntPaths converts several float64 contours at once.
func (a PointAdapter) ToIntPaths(paths [][][2]float64) []overlay.Ring {
	out := make([]overlay.Ring, len(paths))
	for i, p := range paths {
		out[i] = a.ToIntPath(p)
	}
	return out
}

// ToFloatPath converts a lattice ring back to float64 points.
func (a PointAdapter) ToFloatPath(ring overlay.Ring) [][2]float64 {
	out := make([][2]float64, len(ring))
	for i, p := range ring {
		x, y := a.ToFloat(p)
		out[i] = [2]float64{x, y}
	}
	return out
}

// ToFloatShape converts a lattice Shape (outer ring plus holes) back to
// float64 contours, outer first.
func (a PointAdapter) ToFloatShape(s overlay.Shape) [][][2]float64 {
	out := make([][][2]float64, 0, 1+len(s.Holes))
	out = append(out, a.ToFloatPath(s.Outer))
	for _, h := range s.Holes {
		out = append(out, a.ToFloatPath(h))
	}
	return out
}
