package domain

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// MaxPrecision is the largest number of decimal digits Round keeps.
	MaxPrecision = 100

	// fixedLimit is the magnitude from which fixed-decimal rendering falls
	// back to exponent form and rounding becomes the identity.
	fixedLimit = 1e21

	// exactDigits covers every fractional digit a float64 can carry (2^-1074).
	exactDigits = 1100
)

// ClampPrecision forces p into [0, MaxPrecision].
func ClampPrecision(p int) int {
	if p < 0 {
		return 0
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// Round renders v with a fixed number of decimals and parses it back.
//
// The exact binary value of v is rounded half away from zero, so 0.125 at two
// digits gives 0.13 and 2.5 at zero digits gives 3. NaN becomes 0.
func Round(v float64, precision int) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, 0) || math.Abs(v) >= fixedLimit {
		return v
	}

	s := toFixed(v, ClampPrecision(precision))
	out, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return out
}

func toFixed(v float64, p int) string {
	neg := v < 0
	exact := new(big.Float).SetFloat64(math.Abs(v)).Text('f', exactDigits)

	intPart, frac, _ := strings.Cut(exact, ".")
	digits := []byte(intPart + frac[:p])
	if frac[p] >= '5' {
		digits = incrementDecimal(digits)
	}

	var b strings.Builder
	b.Grow(len(digits) + 2)
	if neg {
		b.WriteByte('-')
	}
	cut := len(digits) - p
	b.Write(digits[:cut])
	if p > 0 {
		b.WriteByte('.')
		b.Write(digits[cut:])
	}
	return b.String()
}

func incrementDecimal(d []byte) []byte {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] != '9' {
			d[i]++
			return d
		}
		d[i] = '0'
	}
	return append([]byte{'1'}, d...)
}
