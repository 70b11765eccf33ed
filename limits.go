package turbojson

import (
	"cmp"
	"fmt"
)

// Compile-time engine limits (spec §3, §6.4). These are constants rather
// than tunables: the invariants elsewhere in this package (bounded
// recursion checked against these depths) are only sound for these exact
// values, so nothing in the public API allows overriding them.
const (
	// EncodeDepthLimit bounds array/object nesting during Encode. One
	// level deeper than this fails with DepthExceeded.
	EncodeDepthLimit = 32
	// DecodeDepthLimit bounds array/object nesting during Decode.
	DecodeDepthLimit = 1024
	// MaxInputSize is the largest input Decode accepts in a single call.
	MaxInputSize = 1 << 32 // 4 GiB

	// minDoublePrecision and maxDoublePrecision bound the clamp range for
	// the WithDoublePrecision option (spec §4.3, §9: "10-default-with-15-clamp").
	minDoublePrecision = 0
	maxDoublePrecision = 15
	// defaultDoublePrecision is applied when the double precision is left
	// at its unset sentinel (-1, see defaultEncodeOptions in options.go).
	defaultDoublePrecision = 10
)

func init() {
	if EncodeDepthLimit <= 0 || DecodeDepthLimit <= 0 {
		panic(fmt.Sprintf("turbojson: nonsensical depth limits: encode=%d decode=%d", EncodeDepthLimit, DecodeDepthLimit))
	}
	if EncodeDepthLimit > DecodeDepthLimit {
		panic("turbojson: encode depth limit must not exceed decode depth limit")
	}
	if minDoublePrecision > maxDoublePrecision || defaultDoublePrecision > maxDoublePrecision {
		panic("turbojson: nonsensical double-precision clamp range")
	}
}

// clampPrecision normalizes a requested double_precision value to the
// documented range: negative values and the "unset" sentinel clamp to the
// default; anything above the maximum clamps to the maximum.
func clampPrecision(p int) int {
	if p < 0 {
		return defaultDoublePrecision
	}
	if cmp.Compare(p, maxDoublePrecision) > 0 {
		return maxDoublePrecision
	}
	return p
}
