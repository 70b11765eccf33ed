// Package fuzzcorpus holds seed corpora and fuzz/property tests that
// exercise the string and number codecs through realistic byte-level
// inputs rather than hand-picked cases. It has no non-test source, so it
// is never imported; it exists purely to run under `go test`/`go test
// -fuzz`.
package fuzzcorpus

import (
	"testing"

	"github.com/openbindings/turbojson/internal/jsonnum"
	"github.com/openbindings/turbojson/internal/jsonstr"
)

func FuzzScanString(f *testing.F) {
	seeds := []string{
		`"hello"`,
		`"a\nb\tc"`,
		`"Aé"`,
		`"😀"`,
		`"unterminated`,
		`"bad\escape"`,
		`"`,
		``,
		`"\ud83d"`,
		"\"a\x01b\"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		data := []byte(s)
		val, pos, _, err := jsonstr.ScanString(data, 0, nil)
		if err != nil {
			return
		}
		if pos < 0 || pos > len(data) {
			t.Fatalf("ScanString returned out-of-range position %d for input of length %d", pos, len(data))
		}
		// Re-scanning the exact same bytes must be deterministic.
		val2, pos2, _, err2 := jsonstr.ScanString(data, 0, nil)
		if err2 != nil || val != val2 || pos != pos2 {
			t.Fatalf("ScanString is not deterministic for %q", s)
		}
	})
}

func FuzzScanNumber(f *testing.F) {
	seeds := []string{
		"0", "-0", "1", "-1", "123", "0.5", "-0.5", "1e10", "1E+10", "1.5e-10",
		"18446744073709551615", "-9223372036854775808", "01", "1.", "1e", "-", ".5", "",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		data := []byte(s)
		n, err := jsonnum.ScanNumber(data, 0)
		if err != nil {
			return
		}
		if n.End < n.Start || n.End > len(data) {
			t.Fatalf("ScanNumber returned out-of-range span [%d,%d) for input of length %d", n.Start, n.End, len(data))
		}
		span := data[n.Start:n.End]
		if !n.IsFloat {
			digitsStart := n.Start
			if n.Negative {
				digitsStart++
			}
			if _, overflow := jsonnum.ParseUintMagnitude(data[digitsStart:n.IntEnd]); overflow {
				return
			}
		} else {
			// The fast float path must never panic on any scanned span.
			_ = jsonnum.ParseFloatFast(span)
		}
	})
}
