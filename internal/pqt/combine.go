package pqt

import (
	"math/big"

	"github.com/kali505/pi/internal/bigmul"
)

// Triple is a partial product over a contiguous range of term indices:
// P̂ = ∏P(i), Q̂ = ∏Q(i), T̂ = ∑T(i)·∏_{j>i}Q(j)·∏_{j<i}P(j). Sign lives
// only in T; P and Q are always non-negative.
type Triple struct {
	P, Q, T *big.Int
}

// mergeAt folds the slots named by idx (ascending index order) right to
// left into idx[0], zeroing every other named slot, per the combine rule:
// given adjacent L=(Pl,Ql,Tl) and R=(Pr,Qr,Tr), P=Pl·Pr, Q=Ql·Qr,
// T=Tl·Qr+Tr·Pl. Mutation order matters: T is updated before P and Q, since
// it needs their pre-merge values.
func mergeAt(P, Q, T []*big.Int, idx []int) {
	if len(idx) == 0 {
		return
	}

	racc := len(idx) - 1
	for i := len(idx) - 2; i >= 0; i-- {
		left, right := idx[i], idx[racc]

		bigmul.Mul(T[left], T[left], Q[right])
		cross := bigmul.Mul(new(big.Int), T[right], P[left])
		T[left].Add(T[left], cross)

		bigmul.Mul(P[left], P[left], P[right])
		bigmul.Mul(Q[left], Q[left], Q[right])

		T[right].SetInt64(0)
		P[right].SetInt64(0)
		Q[right].SetInt64(0)

		racc = i
	}
}

// CombineLocal folds a contiguous block of (P,Q,T) triples in place into
// slot 0; every other slot is left zeroed. This is the stride-1 special
// case of CombineStrided, used on freshly generated leaves.
func CombineLocal(P, Q, T []*big.Int) {
	idx := make([]int, len(P))
	for i := range idx {
		idx[i] = i
	}
	mergeAt(P, Q, T, idx)
}

// CombineStrided folds the triples at the given indices — a sparse view
// into a larger backing array, such as every step-th surviving slot at one
// level of the reduction tree — in place into idx[0], zeroing the rest.
// idx must be strictly ascending.
func CombineStrided(P, Q, T []*big.Int, idx []int) {
	mergeAt(P, Q, T, idx)
}
