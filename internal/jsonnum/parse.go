package jsonnum

import (
	"math"
	"strconv"
)

// ParseUintMagnitude converts a digit-only span (no sign) to a uint64,
// reporting overflow if the value exceeds the unsigned 64-bit range
// (spec §4.6: "Anything beyond unsigned 64-bit range fails with
// NumberOutOfRange").
func ParseUintMagnitude(digits []byte) (value uint64, overflow bool) {
	const maxUint64 = ^uint64(0)
	for _, c := range digits {
		d := uint64(c - '0')
		if value > maxUint64/10 || (value == maxUint64/10 && d > maxUint64%10) {
			return 0, true
		}
		value = value*10 + d
	}
	return value, false
}

// pow10fTable holds 10^0 .. 10^22 as float64, the largest run of powers
// of ten exactly representable in binary64, used to scale the fast-path
// mantissa without calling math.Pow for the common case.
var pow10fTable = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

func pow10f(e int) float64 {
	if e >= 0 {
		if e < len(pow10fTable) {
			return pow10fTable[e]
		}
		return math.Pow(10, float64(e))
	}
	e = -e
	if e < len(pow10fTable) {
		return 1 / pow10fTable[e]
	}
	return math.Pow(10, float64(-e))
}

// ParseFloatFast implements the default (non-precise_float) decode path
// from spec §4.6: a 64-bit mantissa accumulator capped at 18 significant
// decimal digits, scaled by a precomputed power-of-ten table. It is
// accurate to the last 1-2 ULPs; ParseFloatPrecise should be used when
// exact round-tripping matters. span must already have been validated by
// ScanNumber.
func ParseFloatFast(span []byte) float64 {
	i := 0
	neg := false
	if span[i] == '-' {
		neg = true
		i++
	}

	var mantissa uint64
	digits := 0
	fracDigits := 0
	extraIntDigits := 0
	sawDot := false

	for i < len(span) {
		c := span[i]
		switch {
		case c == '.':
			sawDot = true
			i++
			continue
		case c == 'e' || c == 'E':
			i = len(span) // handled below via exponent scan from this point
		default:
			if digits < 18 {
				mantissa = mantissa*10 + uint64(c-'0')
				digits++
				if sawDot {
					fracDigits++
				}
			} else if !sawDot {
				extraIntDigits++
			}
			i++
			continue
		}
		break
	}

	exp := 0
	// Re-scan for an exponent marker, since the loop above only detects
	// and exits on it without consuming its digits.
	for j := 0; j < len(span); j++ {
		if span[j] == 'e' || span[j] == 'E' {
			j++
			expNeg := false
			if j < len(span) && (span[j] == '+' || span[j] == '-') {
				expNeg = span[j] == '-'
				j++
			}
			for j < len(span) && span[j] >= '0' && span[j] <= '9' {
				exp = exp*10 + int(span[j]-'0')
				j++
			}
			if expNeg {
				exp = -exp
			}
			break
		}
	}

	totalExp := exp - fracDigits + extraIntDigits
	f := float64(mantissa) * pow10f(totalExp)
	if neg {
		f = -f
	}
	return f
}

// ParseFloatPrecise uses the standard library's correctly-rounded
// decimal-to-binary64 conversion, for callers that set precise_float
// (spec §4.6).
func ParseFloatPrecise(span []byte) (float64, error) {
	return strconv.ParseFloat(string(span), 64)
}
