package formatter

import (
	"math/big"
	"strings"
	"testing"
)

func TestFormatPiOutput_Header_Plain(t *testing.T) {
	out := FormatPiOutput(10, big.NewInt(3141592653))
	if !strings.Contains(out, "10 Digits of Pi") {
		t.Errorf("expected header naming 10 digits, got:\n%s", out)
	}
}

func TestFormatPiOutput_Header_Thousand(t *testing.T) {
	out := FormatPiOutput(3000, big.NewInt(314))
	if !strings.Contains(out, "3 Thousand Digits of Pi") {
		t.Errorf("expected thousand-scaled header, got:\n%s", out)
	}
}

func TestFormatPiOutput_Header_Million(t *testing.T) {
	out := FormatPiOutput(2_000_000, big.NewInt(314))
	if !strings.Contains(out, "2 Million Digits of Pi") {
		t.Errorf("expected million-scaled header, got:\n%s", out)
	}
}

func TestFormatPiOutput_SingleDigit(t *testing.T) {
	out := FormatPiOutput(1, big.NewInt(3))
	if !strings.Contains(out, "3.\n") {
		t.Errorf("expected lone '3.' line, got:\n%s", out)
	}
}

func TestFormatPiOutput_LeadingThreeDot(t *testing.T) {
	out := FormatPiOutput(10, big.NewInt(3141592653))
	lines := strings.Split(out, "\n")
	found := false
	for _, l := range lines {
		if l == "3." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a standalone '3.' line, got:\n%s", out)
	}
}

func TestFormatPiOutput_GroupsFiftyPerLine(t *testing.T) {
	digits := "3" + strings.Repeat("1", 150)
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		t.Fatal("bad test fixture")
	}
	out := FormatPiOutput(151, v)

	fullLines := 0
	for _, l := range strings.Split(out, "\n") {
		if len(l) == digitsPerLine {
			fullLines++
		}
	}
	if fullLines != 3 {
		t.Errorf("expected 3 full 50-digit lines, got %d", fullLines)
	}
}

func TestFormatPiOutput_ZeroDigits(t *testing.T) {
	out := FormatPiOutput(0, big.NewInt(0))
	if out == "" {
		t.Error("expected non-empty output even for N=0")
	}
}
