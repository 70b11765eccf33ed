package jsonnum

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

// ErrNonFinite is returned by AppendDouble for NaN and ±Inf inputs (spec
// §4.3: "Inputs NaN and ±∞ fail with NonFiniteNumber"). The caller (the
// root package) maps this to the engine's Error taxonomy; this package
// stays free of that dependency so it can be used standalone.
var ErrNonFinite = errors.New("jsonnum: non-finite double")

// pow10Table holds 10^0 .. 10^15 as exact uint64 values, used to scale
// the fractional part of a double without repeated floating-point
// multiplication.
var pow10Table = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000,
	10000000000000, 100000000000000, 1000000000000000,
}

// AppendDouble appends the JSON-number rendering of f to dst, per spec
// §4.3: fixed-point form with precision fractional digits (trailing
// zeros trimmed, at least one kept) for |f| in [1e-4, 1e16), and
// scientific form "d.ddddEsdd" outside that range. precision must already
// be clamped to [0,15] by the caller.
func AppendDouble(dst []byte, f float64, precision int) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return dst, ErrNonFinite
	}
	if f == 0 {
		if math.Signbit(f) {
			dst = append(dst, '-')
		}
		return append(dst, '0', '.', '0'), nil
	}

	neg := f < 0
	abs := math.Abs(f)

	if abs >= 1e16 || abs < 1e-4 {
		return appendScientific(dst, abs, neg, precision), nil
	}
	return appendFixed(dst, abs, neg, precision), nil
}

func appendFixed(dst []byte, abs float64, neg bool, precision int) []byte {
	if precision < 1 {
		precision = 1 // always keep at least one fractional digit (spec §4.3)
	}
	intPart := uint64(abs)
	frac := abs - float64(intPart)

	scale := pow10Table[precision]
	fracInt := uint64(math.Round(frac * float64(scale)))
	if fracInt >= scale {
		fracInt -= scale
		intPart++
	}

	if neg {
		dst = append(dst, '-')
	}
	dst = AppendUint64(dst, intPart)
	dst = append(dst, '.')
	dst = appendFixedWidthDigits(dst, fracInt, precision)
	return trimTrailingZeros(dst)
}

// appendFixedWidthDigits appends exactly width zero-padded decimal digits
// of v.
func appendFixedWidthDigits(dst []byte, v uint64, width int) []byte {
	var scratch [20]byte
	digits := AppendUint64(scratch[:0], v)
	for pad := width - len(digits); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}

// trimTrailingZeros removes trailing '0' bytes from the fractional part
// of dst (which must end in digits following a '.'), keeping at least one
// fractional digit so values like 1.0 still round-trip.
func trimTrailingZeros(dst []byte) []byte {
	dotIdx := bytes.LastIndexByte(dst, '.')
	if dotIdx < 0 {
		return dst
	}
	end := len(dst)
	for end > dotIdx+2 && dst[end-1] == '0' {
		end--
	}
	return dst[:end]
}

func appendScientific(dst []byte, abs float64, neg bool, precision int) []byte {
	buf := strconv.AppendFloat(nil, abs, 'e', precision, 64)
	eIdx := bytes.IndexByte(buf, 'e')
	mantissa := trimTrailingZeros(buf[:eIdx])
	expPart := buf[eIdx+1:] // e.g. "+16" or "-07"

	if neg {
		dst = append(dst, '-')
	}
	dst = append(dst, mantissa...)
	dst = append(dst, 'E')
	dst = append(dst, expPart[0])

	expDigits := expPart[1:]
	i := 0
	for i < len(expDigits)-1 && expDigits[i] == '0' {
		i++
	}
	return append(dst, expDigits[i:]...)
}
