package overlay

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/v2/trees/redblacktree"
)

// Solver selects the scan-structure back-end used by the split and fill
// solvers. It does not change the split iteration bound: every variant
// runs at most splitIterationCap passes. It is a per-call performance
// hint; well-conditioned input produces the same result under every
// variant (§5, §9 "Solver hint").
type Solver int

const (
	SolverAuto Solver = iota
	SolverAverage
	SolverPrecise
)

// splitIterationCap bounds how many fixed-point split passes the solver
// runs under every Solver variant: passes stop when one produces no new
// splits or this cap is hit, and whatever residual remains after the
// cap is accepted; Precise does not iterate past it (§9's resolved Open
// Question: round-half-to-even with a cap of 8).
const splitIterationCap = 8

// useTreeBackend reports whether a scan structure expected to hold up to
// n concurrently live entries should use the red-black-tree back-end
// rather than the linear buffer. Average always prefers the cheaper
// linear buffer (accepting its worst case as part of "known-small
// residual"); Precise always takes the tree; Auto switches over once the
// expected live-set size crosses a small fixed crossover point, in the
// spirit of the source's log2(n)·sqrt(n) sizing heuristic.
func (s Solver) useTreeBackend(n int) bool {
	switch s {
	case SolverAverage:
		return false
	case SolverPrecise:
		return true
	default:
		const autoTreeCrossover = 64
		return n > autoTreeCrossover
	}
}

// linearScanCapacity estimates the number of concurrently live entries
// during a sweep of n input segments, mirroring the source's
// `count.log2_sqrt()` sizing used to preallocate the linear scan buffer.
func linearScanCapacity(n int) int {
	if n < 2 {
		return n
	}
	c := int(math.Log2(float64(n)) * math.Sqrt(float64(n)))
	if c < 4 {
		c = 4
	}
	return c
}

// seqKey wraps a stored value with a monotonic insertion sequence number
// so the tree back-end keeps a strict total order even when two values
// compare equal under `less` — which can happen transiently mid-sweep
// before later stages dedupe coincident geometry.
type seqKey[T any] struct {
	seq   uint64
	value T
}

// scanSet is the shared scan-structure back-end behind the split solver
// (§4.3), fill solver (§4.4), and hole binder (§4.7): a small ordered set
// of values, queryable for the neighbor of a probe under a caller-defined
// total order. It is a tagged union over two back-ends rather than an
// interface, so neither back-end pays for dynamic dispatch on the hot
// sweep loop (§9): Solver.useTreeBackend picks the variant once, at
// construction, from the expected live-set size.
type scanSet[T any] struct {
	less func(a, b T) bool

	useTree bool
	linear  []seqKey[T]
	tree    *redblacktree.Tree[seqKey[T], struct{}]
	nextSeq uint64
}

func newScanSet[T any](solver Solver, expectedSize int, less func(a, b T) bool) *scanSet[T] {
	s := &scanSet[T]{less: less, useTree: solver.useTreeBackend(expectedSize)}
	if s.useTree {
		s.tree = redblacktree.NewWith[seqKey[T], struct{}](func(a, b seqKey[T]) int {
			switch {
			case less(a.value, b.value):
				return -1
			case less(b.value, a.value):
				return 1
			case a.seq < b.seq:
				return -1
			case a.seq > b.seq:
				return 1
			default:
				return 0
			}
		})
	} else {
		s.linear = make([]seqKey[T], 0, linearScanCapacity(expectedSize))
	}
	return s
}

func (s *scanSet[T]) keys() []seqKey[T] {
	if s.useTree {
		return s.tree.Keys()
	}
	return s.linear
}

// insert adds value to the set, keeping the back-end's total order.
func (s *scanSet[T]) insert(value T) {
	key := seqKey[T]{seq: s.nextSeq, value: value}
	s.nextSeq++
	if s.useTree {
		s.tree.Put(key, struct{}{})
		return
	}
	idx := sort.Search(len(s.linear), func(i int) bool { return !s.less(s.linear[i].value, key.value) })
	s.linear = append(s.linear, seqKey[T]{})
	copy(s.linear[idx+1:], s.linear[idx:])
	s.linear[idx] = key
}

// purge removes every entry for which keep returns false — used to drop
// segments whose b-endpoint x has been passed by the sweep (§4.4 step 5,
// §4.7's insert(segment, stop_x)).
func (s *scanSet[T]) purge(keep func(value T) bool) {
	if s.useTree {
		var drop []seqKey[T]
		for _, k := range s.tree.Keys() {
			if !keep(k.value) {
				drop = append(drop, k)
			}
		}
		for _, k := range drop {
			s.tree.Remove(k)
		}
		return
	}
	out := s.linear[:0]
	for _, k := range s.linear {
		if keep(k.value) {
			out = append(out, k)
		}
	}
	s.linear = out
}

// floorBelow returns the greatest stored value for which isBelow reports
// true, given that isBelow is monotonic (true for a prefix of the
// ordered set, false afterward) — i.e. the nearest entry strictly under
// a probe (§4.4 step 2's "nearest segment strictly below the point",
// §4.7's find_under_and_nearest).
func (s *scanSet[T]) floorBelow(isBelow func(value T) bool) (value T, ok bool) {
	keys := s.keys()
	idx := sort.Search(len(keys), func(i int) bool { return !isBelow(keys[i].value) })
	if idx == 0 {
		var zero T
		return zero, false
	}
	return keys[idx-1].value, true
}

// neighbors returns the entries immediately below and above where value
// would be inserted, without mutating the set — used by the split
// solver to find the two scan-list neighbors of a freshly inserted edge
// to test for crossings (§4.3).
func (s *scanSet[T]) neighbors(value T) (below, above T, hasBelow, hasAbove bool) {
	keys := s.keys()
	idx := sort.Search(len(keys), func(i int) bool { return !s.less(keys[i].value, value) })
	if idx > 0 {
		below = keys[idx-1].value
		hasBelow = true
	}
	if idx < len(keys) {
		above = keys[idx].value
		hasAbove = true
	}
	return
}

func (s *scanSet[T]) len() int {
	if s.useTree {
		return s.tree.Size()
	}
	return len(s.linear)
}
