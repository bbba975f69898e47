// Package decimal formats coordinates for SVG attributes.
package decimal

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits kept by Format.
const DefaultPrecision = 2

// Format renders v with at most DefaultPrecision fractional digits.
func Format(v float64) string {
	return FormatPrec(v, DefaultPrecision)
}

// FormatPrec renders v truncated (not rounded) to prec fractional digits.
// Trailing zeros are trimmed, a zero integer part is omitted when a fraction
// remains (".5"), and a value that truncates to zero renders as "0".
func FormatPrec(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}

	negative := v < 0
	if negative {
		v = -v
	}

	whole := math.Floor(v)
	var frac int64
	if prec > 0 {
		scale := math.Pow10(prec)
		// absorb representation error: 0.3 is stored as 0.2999...
		frac = int64((v-whole)*scale + 1e-9)
		if float64(frac) >= scale {
			whole++
			frac = 0
		}
	}

	digits := prec
	for digits > 0 && frac%10 == 0 {
		frac /= 10
		digits--
	}

	if whole == 0 && frac == 0 {
		return "0"
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if whole != 0 {
		b.WriteString(strconv.FormatFloat(whole, 'f', 0, 64))
	}
	if digits > 0 {
		b.WriteByte('.')
		s := strconv.FormatInt(frac, 10)
		b.WriteString(strings.Repeat("0", digits-len(s)))
		b.WriteString(s)
	}
	return b.String()
}

// Int renders an integer coordinate.
func Int(v int) string {
	return strconv.Itoa(v)
}
