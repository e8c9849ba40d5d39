package floatadapter

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// batchMinMax computes the minimum and maximum values in a slice using
// SIMD-width batches with a masked tail, directly adapted from the
// source's BaseBatchMinMax: this package uses the same batched reduction
// to compute a point set's bounding box instead of a coordinate list's
// lat/lng range.
func batchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)

			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}

// boundsOf computes the union bounding box across several point sets by
// flattening each axis into its own contiguous slice and running
// batchMinMax over it, so the reduction stays a single SIMD pass per
// axis regardless of how many separate point sets contributed to it.
func boundsOf(pointSets [][][2]float64) (minX, minY, maxX, maxY float64) {
	var n int
	for _, set := range pointSets {
		n += len(set)
	}
	if n == 0 {
		return 0, 0, 0, 0
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for _, set := range pointSets {
		for _, p := range set {
			xs = append(xs, p[0])
			ys = append(ys, p[1])
		}
	}

	minX, maxX = batchMinMax(xs)
	minY, maxY = batchMinMax(ys)
	return minX, minY, maxX, maxY
}
