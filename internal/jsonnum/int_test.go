package jsonnum

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendUint64(t *testing.T) {
	cases := []uint64{0, 1, 9, 10, 99, 100, 999, 1000, 1234567890, math.MaxUint64}
	for _, u := range cases {
		t.Run(strconv.FormatUint(u, 10), func(t *testing.T) {
			got := string(AppendUint64(nil, u))
			require.Equal(t, strconv.FormatUint(u, 10), got)
		})
	}
}

func TestAppendInt64(t *testing.T) {
	cases := []int64{0, -1, 1, -9, 9, -10, 10, math.MaxInt64, math.MinInt64}
	for _, n := range cases {
		t.Run(strconv.FormatInt(n, 10), func(t *testing.T) {
			got := string(AppendInt64(nil, n))
			require.Equal(t, strconv.FormatInt(n, 10), got)
		})
	}
}

func TestAppendUint64Appends(t *testing.T) {
	got := AppendUint64([]byte("prefix:"), 42)
	require.Equal(t, "prefix:42", string(got))
}

func TestFitsInt64(t *testing.T) {
	require.True(t, FitsInt64(1<<63, true), "magnitude of math.MinInt64 fits when negative")
	require.False(t, FitsInt64(1<<63, false), "magnitude of math.MinInt64 does not fit a positive int64")
	require.True(t, FitsInt64(1<<63-1, false), "math.MaxInt64's own magnitude fits")
	require.False(t, FitsInt64(1<<63+1, true), "one past the negative boundary overflows")
}
