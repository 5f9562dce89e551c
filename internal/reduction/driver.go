// Package reduction drives the two-phase parallel binary-splitting
// reduction: Phase A generates and locally combines leaf chunks, Phase B
// merges surviving slots with stride doubling until one triple remains.
package reduction

import (
	"math/big"

	"github.com/kali505/pi/internal/config"
	"github.com/kali505/pi/internal/pqt"
	"github.com/kali505/pi/internal/workerpool"
)

// LeafDone is invoked once per completed leaf chunk during Phase A, for
// progress reporting. It carries no arguments; callers that need a running
// total combine it with LeafCount.
type LeafDone func()

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// NeedIters returns the number of series terms required to reach n decimal
// digits, before rounding up to a multiple of LeafSize: ⌈n·10⁹/14181647463⌉+1.
func NeedIters(n int64, cfg *config.Config) int64 {
	numerator := n * cfg.DigitsPerIterDenominator
	return ceilDiv(numerator, cfg.DigitsPerIterNumerator) + 1
}

// LeafCount returns M, the number of leaf chunks Run will dispatch for n
// digits under cfg.
func LeafCount(n int64, cfg *config.Config) int64 {
	m := ceilDiv(NeedIters(n, cfg), cfg.LeafSize)
	if m < 1 {
		m = 1
	}
	return m
}

// Run executes the full reduction for n digits (n must be at least 1; the
// n=0 short-circuit is the caller's responsibility) and returns the
// combined triple over [0, k), where k = LeafCount(n, cfg) * cfg.LeafSize.
//
// pool may be nil, in which case every dispatched task runs inline on the
// calling goroutine — useful for small requests where spinning up workers
// isn't worth it, and for tests that want a deterministic, single-threaded
// run to compare against a parallel one.
func Run(n int64, cfg *config.Config, pool *workerpool.Pool, onLeaf LeafDone) (pqt.Triple, int64, error) {
	m := LeafCount(n, cfg)
	k := m * cfg.LeafSize

	P := make([]*big.Int, m)
	Q := make([]*big.Int, m)
	T := make([]*big.Int, m)

	dispatch := func(fn func()) {
		if pool == nil {
			fn()
			return
		}
		pool.Go(fn)
	}
	fence := func() {
		if pool != nil {
			pool.Wait()
		}
	}

	// Phase A: generate each leaf's P, Q, T blocks and locally combine them
	// down to a single triple per leaf. All leaves must finish before Phase
	// B starts.
	for leaf := int64(0); leaf < m; leaf++ {
		leaf := leaf
		dispatch(func() {
			start := leaf * cfg.LeafSize
			p := pqt.GenerateP(start, cfg.LeafSize)
			q := pqt.GenerateQ(start, cfg.LeafSize)
			t := pqt.GenerateT(start, cfg.LeafSize, p)
			pqt.CombineLocal(p, q, t)

			P[leaf] = p[0]
			Q[leaf] = q[0]
			T[leaf] = t[0]

			if onLeaf != nil {
				onLeaf()
			}
		})
	}
	fence()

	// Phase B: collapse surviving slots by a factor of up to chunk_sz at
	// each level, doubling (by chunk_sz) the stride between survivors,
	// until a single survivor remains at index 0. Every task at one level
	// must finish before the next level's tasks start.
	step := int64(1)
	fanIn := cfg.ReductionFanIn
	for step < m {
		for groupStart := int64(0); groupStart < m; groupStart += step * fanIn {
			groupEnd := groupStart + step*fanIn
			if groupEnd > m {
				groupEnd = m
			}

			idx := make([]int, 0, fanIn)
			for s := groupStart; s < groupEnd; s += step {
				idx = append(idx, int(s))
			}
			if len(idx) < 2 {
				continue
			}

			dispatch(func() {
				pqt.CombineStrided(P, Q, T, idx)
			})
		}
		fence()
		step *= fanIn
	}

	return pqt.Triple{P: P[0], Q: Q[0], T: T[0]}, k, nil
}
