package turbojson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampPrecision(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"unset sentinel", -1, defaultDoublePrecision},
		{"negative", -5, defaultDoublePrecision},
		{"zero", 0, 0},
		{"within range", 7, 7},
		{"at max", maxDoublePrecision, maxDoublePrecision},
		{"above max", 100, maxDoublePrecision},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, clampPrecision(c.in))
		})
	}
}

func TestDepthLimitsAreSane(t *testing.T) {
	require.Greater(t, EncodeDepthLimit, 0)
	require.Greater(t, DecodeDepthLimit, 0)
	require.LessOrEqual(t, EncodeDepthLimit, DecodeDepthLimit)
}
