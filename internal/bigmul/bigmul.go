// Package bigmul wraps math/big's multiplication with an FFT-accelerated
// path for the large operands the binary-splitting combine rule produces
// near the root of the reduction tree, where schoolbook/Karatsuba
// multiplication dominates runtime.
package bigmul

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// fftThresholdBits is the operand bit-length above which FFT multiplication
// overtakes math/big's own Karatsuba threshold in practice. Below it, the
// FFT setup cost isn't worth paying.
const fftThresholdBits = 1 << 15

// Mul sets z to x*y and returns z, dispatching to bigfft's FFT multiplier
// once either operand is large enough to amortize its setup cost, and to
// (*big.Int).Mul otherwise. z may alias x or y.
func Mul(z, x, y *big.Int) *big.Int {
	if x.BitLen() < fftThresholdBits && y.BitLen() < fftThresholdBits {
		return z.Mul(x, y)
	}

	// bigfft.Mul is documented against non-negative operands; normalize the
	// sign ourselves rather than rely on undocumented behavior for negative
	// big.Int values (T carries sign in the combine rule, P and Q never do).
	neg := (x.Sign() < 0) != (y.Sign() < 0)
	ax := new(big.Int).Abs(x)
	ay := new(big.Int).Abs(y)
	product := bigfft.Mul(ax, ay)

	z.Set(product)
	if neg {
		z.Neg(z)
	}
	return z
}
