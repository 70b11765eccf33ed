package turbojson

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeScalars(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"null", nil},
		{"true", true},
		{"false", false},
		{`"hi"`, "hi"},
		{"0", int64(0)},
		{"-1", int64(-1)},
		{"42", int64(42)},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Decode([]byte(c.in), DefaultBuilder{})
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestDecodeArrayAndObject(t *testing.T) {
	got, err := Decode([]byte(`[1,"two",false,null]`), DefaultBuilder{})
	require.NoError(t, err)
	require.Equal(t, []any{int64(1), "two", false, nil}, got)

	got, err = Decode([]byte(`{"a":1,"b":[2,3]}`), DefaultBuilder{})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": int64(1), "b": []any{int64(2), int64(3)}}, got)
}

func TestDecodeEmptyContainers(t *testing.T) {
	got, err := Decode([]byte(`[]`), DefaultBuilder{})
	require.NoError(t, err)
	require.Equal(t, []any{}, got)

	got, err = Decode([]byte(`{}`), DefaultBuilder{})
	require.NoError(t, err)
	require.Equal(t, map[string]any{}, got)
}

func TestDecodeWhitespaceIsSkipped(t *testing.T) {
	got, err := Decode([]byte("  [ 1 , 2 ]  "), DefaultBuilder{})
	require.NoError(t, err)
	require.Equal(t, []any{int64(1), int64(2)}, got)
}

func TestDecodeTrailingGarbage(t *testing.T) {
	_, err := Decode([]byte(`1 garbage`), DefaultBuilder{})
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, TrailingGarbage, kind)
}

func TestDecodeInvalidSyntax(t *testing.T) {
	cases := []string{"", "[", "{", "[1,]", "{\"a\":}", "tru", "[1 2]"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := Decode([]byte(in), DefaultBuilder{})
			require.Error(t, err)
		})
	}
}

func TestDecodeUnterminatedString(t *testing.T) {
	_, err := Decode([]byte(`"abc`), DefaultBuilder{})
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, UnterminatedString, kind)
}

func TestDecodeIntegerBoundaries(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"9223372036854775807", int64(math.MaxInt64)},
		{"-9223372036854775808", int64(math.MinInt64)},
		{"18446744073709551615", uint64(math.MaxUint64)},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Decode([]byte(c.in), DefaultBuilder{})
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestDecodeIntegerOverflow(t *testing.T) {
	_, err := Decode([]byte("18446744073709551616"), DefaultBuilder{})
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, NumberOutOfRange, kind)

	_, err = Decode([]byte("-9223372036854775809"), DefaultBuilder{})
	kind, ok = KindOf(err)
	require.True(t, ok)
	require.Equal(t, NumberOutOfRange, kind)
}

func TestDecodeFloat(t *testing.T) {
	got, err := Decode([]byte("1.5"), DefaultBuilder{})
	require.NoError(t, err)
	require.InDelta(t, 1.5, got.(float64), 1e-9)
}

func TestDecodePreciseFloatOption(t *testing.T) {
	got, err := Decode([]byte("3.14159265358979"), DefaultBuilder{}, WithPreciseFloat(true))
	require.NoError(t, err)
	require.InDelta(t, 3.14159265358979, got.(float64), 1e-15)
}

func TestDecodeDepthExceeded(t *testing.T) {
	in := strings.Repeat("[", DecodeDepthLimit+1) + strings.Repeat("]", DecodeDepthLimit+1)
	_, err := Decode([]byte(in), DefaultBuilder{})
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, DepthExceeded, kind)
}

func TestDecodeDepthExactlyAtLimitSucceeds(t *testing.T) {
	in := strings.Repeat("[", DecodeDepthLimit) + "0" + strings.Repeat("]", DecodeDepthLimit)
	_, err := Decode([]byte(in), DefaultBuilder{})
	require.NoError(t, err)
}

func TestDecodeErrorOffsetDeterministic(t *testing.T) {
	in := `[1, 2, @]`
	_, err1 := Decode([]byte(in), DefaultBuilder{})
	_, err2 := Decode([]byte(in), DefaultBuilder{})
	var e1, e2 *Error
	require.ErrorAs(t, err1, &e1)
	require.ErrorAs(t, err2, &e2)
	require.Equal(t, e1.Offset, e2.Offset)
	require.Equal(t, e1.Kind, e2.Kind)
}

func TestDecodeAcceptsOrdinarySizedInput(t *testing.T) {
	in := []byte(fmt.Sprintf(`"%s"`, strings.Repeat("a", 16)))
	_, err := Decode(in, DefaultBuilder{})
	require.NoError(t, err)
}
