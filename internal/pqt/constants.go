// Package pqt implements the Chudnovsky series term generators and the
// associative combine rule that folds contiguous runs of (P, Q, T) triples
// into one. It is the binary-splitting core: no collaborator in this
// package knows about files, CLIs, or logging.
package pqt

import "math/big"

var (
	// seriesA is the constant term 13591409 in T(k) = P(k)·(A + B·k)·(−1)^k.
	seriesA = big.NewInt(13591409)

	// seriesB is the linear coefficient 545140134 in the same expression.
	seriesB = big.NewInt(545140134)

	// seriesC scales Q(k): 640320^3/24 = 640320^2 · 26680.
	seriesC = new(big.Int).Mul(new(big.Int).Mul(big.NewInt(640320), big.NewInt(640320)), big.NewInt(26680))

	six   = big.NewInt(6)
	two   = big.NewInt(2)
	one   = big.NewInt(1)
	three = big.NewInt(3)
)
