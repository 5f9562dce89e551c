package pqt

import "math/big"

// GenerateP produces the contiguous block P(start), P(start+1), ...,
// P(start+length−1) using the incremental recurrence a+=6, b+=2, c+=6 on
// P(k) = a·b·c rather than re-evaluating the closed form for every term.
// P(0) is defined as 1 (the closed form gives (−5)(−1)(−1) = −5).
func GenerateP(start, length int64) []*big.Int {
	out := make([]*big.Int, length)
	if length == 0 {
		return out
	}

	a := big.NewInt(6*start - 5)
	b := big.NewInt(2*start - 1)
	c := big.NewInt(6*start - 1)

	out[0] = new(big.Int).Mul(new(big.Int).Mul(a, b), c)
	for i := int64(1); i < length; i++ {
		a.Add(a, six)
		b.Add(b, two)
		c.Add(c, six)
		out[i] = new(big.Int).Mul(new(big.Int).Mul(a, b), c)
	}

	if start == 0 {
		out[0] = big.NewInt(1)
	}
	return out
}

// GenerateQ produces the contiguous block Q(start), ..., Q(start+length−1).
// Q(k) = k³·C is built incrementally via Q(k) = Q(k−1) + 3k(k−1) + 1 (before
// scaling by C), avoiding a fresh cube per term. Q(0) is defined as 1.
func GenerateQ(start, length int64) []*big.Int {
	out := make([]*big.Int, length)
	if length == 0 {
		return out
	}

	startBig := big.NewInt(start)
	out[0] = new(big.Int).Exp(startBig, three, nil)

	k := new(big.Int).Add(startBig, one)
	for i := int64(1); i < length; i++ {
		km1 := new(big.Int).Sub(k, one)
		x := new(big.Int).Mul(k, km1)
		x.Mul(x, three)
		x.Add(x, one)
		x.Add(x, out[i-1])
		out[i] = x
		k.Add(k, one)
	}

	for i := range out {
		out[i].Mul(out[i], seriesC)
	}

	if start == 0 {
		out[0] = big.NewInt(1)
	}
	return out
}

// GenerateT produces the contiguous block T(start), ..., T(start+length−1),
// given the already-generated P block for the same range. The linear term
// 13591409 + 545140134·k is built incrementally, then multiplied by P(k),
// then signed (−1)^k.
func GenerateT(start, length int64, p []*big.Int) []*big.Int {
	out := make([]*big.Int, length)
	if length == 0 {
		return out
	}

	out[0] = new(big.Int).Mul(seriesB, big.NewInt(start))
	out[0].Add(out[0], seriesA)
	for i := int64(1); i < length; i++ {
		out[i] = new(big.Int).Add(out[i-1], seriesB)
	}

	startOdd := start%2 != 0
	for i := int64(0); i < length; i++ {
		out[i].Mul(out[i], p[i])
		iOdd := i%2 != 0
		if iOdd != startOdd {
			out[i].Neg(out[i])
		}
	}
	return out
}
