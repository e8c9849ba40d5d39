// Package overlay implements a 2D polygon boolean/overlay engine over
// bounded integer-coordinate geometry.
//
// Given a subject and a clip polygon set, each a collection of closed
// contours with integer vertices, the engine computes boolean
// combinations (intersection, union, difference, inverse difference,
// symmetric difference) under a chosen fill rule (non-zero, even-odd,
// positive, negative). It also supports a string mode that clips open
// polyline strings against a closed polygon set.
//
// The engine is single-threaded, synchronous, and total: it never
// fails on well-formed input, and it holds no global state, so values
// of this package are safe to use concurrently across disjoint inputs.
package overlay
