package turbojson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindStringCoversAllValues(t *testing.T) {
	kinds := []ValueKind{KindNull, KindBool, KindI64, KindU64, KindDouble, KindString, KindArray, KindObject, KindCustom}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		require.NotEqual(t, "unknown", s)
		require.False(t, seen[s], "duplicate Kind.String() value %q", s)
		seen[s] = true
	}
	require.Equal(t, "unknown", ValueKind(999).String())
}
