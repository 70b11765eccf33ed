package jsonstr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanStringFastPath(t *testing.T) {
	data := []byte(`"hello world" tail`)
	val, pos, _, err := ScanString(data, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "hello world", val)
	require.Equal(t, 13, pos)
}

func TestScanStringEscapes(t *testing.T) {
	data := []byte(`"a\nb\tc\"d\\e"`)
	val, _, _, err := ScanString(data, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "a\nb\tc\"d\\e", val)
}

func TestScanStringUnicodeEscape(t *testing.T) {
	data := []byte("\"caf\\u00e9\"")
	val, _, _, err := ScanString(data, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "café", val)
}

func TestScanStringSurrogatePair(t *testing.T) {
	data := []byte("\"\\ud83d\\ude00\"")
	val, _, _, err := ScanString(data, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "\U0001F600", val)
}

func TestScanStringUnterminated(t *testing.T) {
	data := []byte(`"abc`)
	_, _, _, err := ScanString(data, 0, nil)
	require.ErrorIs(t, err, ErrUnterminatedString)
}

func TestScanStringUnpairedHighSurrogate(t *testing.T) {
	data := []byte(`"\ud83dx"`)
	_, _, _, err := ScanString(data, 0, nil)
	require.ErrorIs(t, err, ErrInvalidEscape)
}

func TestScanStringBareControlByte(t *testing.T) {
	data := []byte("\"a\nb\"")
	_, _, _, err := ScanString(data, 0, nil)
	require.ErrorIs(t, err, ErrInvalidEscape)
}

func TestScanStringInvalidEscapeChar(t *testing.T) {
	data := []byte(`"a\qb"`)
	_, _, _, err := ScanString(data, 0, nil)
	require.ErrorIs(t, err, ErrInvalidEscape)
}

func TestScanStringReusesScratch(t *testing.T) {
	scratch := make([]byte, 0, 64)
	data := []byte(`"a\nb"`)
	val, _, scratch, err := ScanString(data, 0, scratch)
	require.NoError(t, err)
	require.Equal(t, "a\nb", val)
	require.GreaterOrEqual(t, cap(scratch), 2)
}
