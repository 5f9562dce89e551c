// Package rootconst computes the √10005 constant scaled to a requested
// digit count, as a single background computation independent of the main
// reduction.
package rootconst

import "math/big"

var ten005 = big.NewInt(10005)

// Start launches the computation of S = ⌊√(10005 · 10^(2n))⌋ on its own
// goroutine and returns a channel that will receive the single result. It
// is meant to run concurrently with the parallel reduction and be joined
// immediately before assembly.
//
// n is the decimal scale exponent, not a digit count: assembling a result
// with exactly N decimal digits means calling Start(N-1), since
// 426880·√10005·Q̂/T̂ converges to π itself, and multiplying by 10^(N-1)
// is what shifts it into an (N)-digit integer.
func Start(n int64) <-chan *big.Int {
	out := make(chan *big.Int, 1)
	go func() {
		// s = 5^(2n); left-shifting by 2n then multiplies by 2^(2n), giving
		// 5^(2n) * 2^(2n) = 10^(2n); then scale by 10005 before the sqrt.
		s := new(big.Int).Exp(big.NewInt(5), big.NewInt(2*n), nil)
		s.Lsh(s, uint(2*n))
		s.Mul(s, ten005)
		s.Sqrt(s)
		out <- s
	}()
	return out
}
