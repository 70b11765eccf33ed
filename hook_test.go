package turbojson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubHook struct {
	raw       []byte
	hasRaw    bool
	dict      EncodeAdapter
	hasDict   bool
}

func (h stubHook) ToRawJSON() ([]byte, bool) { return h.raw, h.hasRaw }
func (h stubHook) ToDict() (EncodeAdapter, bool) { return h.dict, h.hasDict }

func TestResolveCustomNilHook(t *testing.T) {
	_, _, _, ok := resolveCustom(nil)
	require.False(t, ok)
}

func TestResolveCustomPrefersRawJSON(t *testing.T) {
	dict := Wrap(map[string]any{"a": 1})
	h := stubHook{raw: []byte(`{"raw":true}`), hasRaw: true, dict: dict, hasDict: true}

	d, raw, isRaw, ok := resolveCustom(h)
	require.True(t, ok)
	require.True(t, isRaw)
	require.Equal(t, `{"raw":true}`, string(raw))
	require.Nil(t, d)
}

func TestResolveCustomFallsBackToDict(t *testing.T) {
	dict := Wrap(map[string]any{"a": 1})
	h := stubHook{dict: dict, hasDict: true}

	d, _, isRaw, ok := resolveCustom(h)
	require.True(t, ok)
	require.False(t, isRaw)
	require.Equal(t, dict, d)
}

func TestResolveCustomNeitherApplies(t *testing.T) {
	h := stubHook{}
	_, _, _, ok := resolveCustom(h)
	require.False(t, ok)
}
