// Package formatter renders a computed π integer into the project's
// human-readable digit-dump format.
package formatter

import (
	"fmt"
	"math/big"
	"strings"
)

const digitsPerLine = 50

// FormatPiOutput renders v, the exact integer ⌊π · 10^(n−1)⌋ returned by
// internal/calculator, as an n-digit decimal expansion of π: a header line
// naming the digit count, "3." on its own line, then the remaining digits
// grouped digitsPerLine to a line.
//
// Decimal conversion is delegated entirely to big.Int.String; this package
// never parses or re-renders the number itself.
func FormatPiOutput(n int64, v *big.Int) string {
	var out strings.Builder

	out.WriteString(digitLabel(n) + "\n")
	out.WriteString("\n")

	s := v.String()
	if s == "" {
		return out.String()
	}

	out.WriteString(s[:1] + ".\n")
	rest := s[1:]

	for i := 0; i < len(rest); i += digitsPerLine {
		end := i + digitsPerLine
		if end > len(rest) {
			end = len(rest)
		}
		out.WriteString(rest[i:end] + "\n")
	}

	return out.String()
}

func digitLabel(n int64) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return fmt.Sprintf("%d Million Digits of Pi", n/1_000_000)
	case n >= 1_000 && n%1_000 == 0:
		return fmt.Sprintf("%d Thousand Digits of Pi", n/1_000)
	default:
		return fmt.Sprintf("%d Digits of Pi", n)
	}
}
