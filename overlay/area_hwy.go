package overlay

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// batchCrossZ computes the z-component of the 2D cross product ax*by -
// ay*bx for parallel vector components in SoA layout, directly adapted
// from the source's 3D BaseBatchCrossProduct (here the x/y components of
// a 3D cross product's z term, since a planar cross product is just that
// one component).
func batchCrossZ[T hwy.Floats](ax, ay, bx, by []T, out []T) {
	size := min(len(ax), len(ay), len(bx), len(by), len(out))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])

			vOut := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))
			hwy.Store(vOut, out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])

			vOut := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))
			hwy.MaskStore(mask, vOut, out[offset:])
		},
	)
}

// RingsTotalArea sums the unsigned area of every ring in one batched
// pass: each ring's edges are flattened into SoA x/y component slices
// relative to the ring's own first point (products are exact in float64
// only while they stay below 2^53, which rings spanning the full ±2^29
// coordinate domain can exceed), and batchCrossZ
// computes every edge's shoelace term at once (§4 Supplemented
// Features: a bulk diagnostic over extracted shapes).
func RingsTotalArea(rings []Ring) int64 {
	var total int64
	for _, ring := range rings {
		n := len(ring)
		if n < 3 {
			continue
		}
		ax := make([]float64, n)
		ay := make([]float64, n)
		bx := make([]float64, n)
		by := make([]float64, n)
		origin := ring[0]
		for i := 0; i < n; i++ {
			p := ring[i]
			q := ring[(i+1)%n]
			ax[i] = float64(p.X - origin.X)
			ay[i] = float64(p.Y - origin.Y)
			bx[i] = float64(q.X - origin.X)
			by[i] = float64(q.Y - origin.Y)
		}
		terms := make([]float64, n)
		batchCrossZ(ax, ay, bx, by, terms)

		var sum float64
		for _, t := range terms {
			sum += t
		}
		if sum < 0 {
			sum = -sum
		}
		total += int64(sum) / 2
	}
	return total
}
