package rootconst

import (
	"math/big"
	"testing"
)

func TestStart_MatchesDirectComputation(t *testing.T) {
	const n = 50

	got := <-Start(n)

	want := new(big.Int).Exp(big.NewInt(5), big.NewInt(2*n), nil)
	want.Lsh(want, uint(2*n))
	want.Mul(want, big.NewInt(10005))
	want.Sqrt(want)

	if got.Cmp(want) != 0 {
		t.Errorf("Start(%d) = %s, want %s", n, got, want)
	}
}

func TestStart_IsPositiveAndGrowsWithN(t *testing.T) {
	small := <-Start(1)
	large := <-Start(20)

	if small.Sign() <= 0 || large.Sign() <= 0 {
		t.Fatal("expected positive results")
	}
	if large.Cmp(small) <= 0 {
		t.Error("expected S to grow with n")
	}
}

func TestStart_ZeroExponent(t *testing.T) {
	got := <-Start(0)
	// S = floor(sqrt(10005)) = 100
	want := big.NewInt(100)
	if got.Cmp(want) != 0 {
		t.Errorf("Start(0) = %s, want %s", got, want)
	}
}
