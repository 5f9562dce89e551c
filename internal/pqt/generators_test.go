package pqt

import (
	"math/big"
	"testing"
)

func bigInts(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func assertEqualInts(t *testing.T, name string, got []*big.Int, want []*big.Int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length mismatch, got %d want %d", name, len(got), len(want))
	}
	for i := range want {
		if got[i].Cmp(want[i]) != 0 {
			t.Errorf("%s[%d] = %s, want %s", name, i, got[i], want[i])
		}
	}
}

func TestGenerateP_ReferenceVector(t *testing.T) {
	got := GenerateP(0, 7)
	want := bigInts(1, 5, 231, 1105, 3059, 6525, 11935)
	assertEqualInts(t, "P", got, want)
}

func TestGenerateP_EmptyLength(t *testing.T) {
	got := GenerateP(5, 0)
	if len(got) != 0 {
		t.Errorf("expected empty output, got %d elements", len(got))
	}
}

func TestGenerateP_NonZeroStart(t *testing.T) {
	// P(3) = (6*3-5)(2*3-1)(6*3-1) = 13*5*17 = 1105
	got := GenerateP(3, 1)
	want := big.NewInt(1105)
	if got[0].Cmp(want) != 0 {
		t.Errorf("P(3) = %s, want %s", got[0], want)
	}
}

func TestGenerateQ_ReferenceVector(t *testing.T) {
	got := GenerateQ(0, 6)
	want := bigInts(
		1,
		10939058860032000,
		87512470880256000,
		295354589220864000,
		700099767042048000,
		1367382357504000000,
	)
	assertEqualInts(t, "Q", got, want)
}

func TestGenerateQ_EmptyLength(t *testing.T) {
	got := GenerateQ(0, 0)
	if len(got) != 0 {
		t.Errorf("expected empty output, got %d elements", len(got))
	}
}

func TestGenerateT_ReferenceVector(t *testing.T) {
	p := bigInts(1, 5, 231, 1105, 3059, 6525)
	got := GenerateT(0, 6, p)
	want := bigInts(
		13591409,
		-2793657715,
		254994357387,
		-1822158051155,
		6711910799755,
		-17873880815475,
	)
	assertEqualInts(t, "T", got, want)
}

func TestGenerateT_OddStart_FlipsSignParity(t *testing.T) {
	// T(k) must have sign (-1)^k regardless of the block's start index.
	p := GenerateP(5, 3)
	got := GenerateT(5, 3, p)
	for i, v := range got {
		k := 5 + int64(i)
		wantNeg := k%2 != 0
		if (v.Sign() < 0) != wantNeg {
			t.Errorf("T(%d) sign mismatch: got sign %d, want negative=%v", k, v.Sign(), wantNeg)
		}
	}
}

func TestGenerateT_EmptyLength(t *testing.T) {
	got := GenerateT(0, 0, nil)
	if len(got) != 0 {
		t.Errorf("expected empty output, got %d elements", len(got))
	}
}
