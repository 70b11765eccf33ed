// Package jsonstr implements the engine's string codecs: the encode-side
// escaper (spec §4.4) and the decode-side lexer (spec §4.5), including
// UTF-16 surrogate-pair reassembly for supplementary-plane code points.
package jsonstr

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalidUnicode is returned by AppendEscaped for malformed UTF-8 or an
// unpaired high surrogate encountered while escaping (spec §4.4).
var ErrInvalidUnicode = errors.New("jsonstr: invalid unicode in source string")

const hexDigits = "0123456789abcdef"

// Options mirrors the subset of EncodeOptions that affects escaping.
type Options struct {
	EnsureASCII          bool
	EncodeHTMLChars      bool
	EscapeForwardSlashes bool
}

// AppendEscaped appends s to dst as a double-quoted JSON string literal,
// per the byte-class table in spec §4.4. It processes s as raw UTF-8
// bytes: runs of bytes that need no special treatment are copied in a
// single append, matching the "copy clean run, then emit escape(s)"
// batching used by fast JSON string escapers (grounded on the
// zapcore/jsonwire encoders; see DESIGN.md).
func AppendEscaped(dst []byte, s string, opts Options) ([]byte, error) {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if !needsASCIIEscape(c, opts) {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			dst = appendASCIIEscape(dst, c)
			i++
			start = i
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return dst, ErrInvalidUnicode
		}
		if opts.EnsureASCII {
			dst = append(dst, s[start:i]...)
			dst = appendUnicodeEscape(dst, r)
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	dst = append(dst, '"')
	return dst, nil
}

func needsASCIIEscape(c byte, opts Options) bool {
	switch c {
	case '"', '\\':
		return true
	case '/':
		return opts.EscapeForwardSlashes
	case '<', '>', '&':
		return opts.EncodeHTMLChars
	}
	return c < 0x20
}

func appendASCIIEscape(dst []byte, c byte) []byte {
	switch c {
	case '"':
		return append(dst, '\\', '"')
	case '\\':
		return append(dst, '\\', '\\')
	case '/':
		return append(dst, '\\', '/')
	case '\b':
		return append(dst, '\\', 'b')
	case '\f':
		return append(dst, '\\', 'f')
	case '\n':
		return append(dst, '\\', 'n')
	case '\r':
		return append(dst, '\\', 'r')
	case '\t':
		return append(dst, '\\', 't')
	case '<':
		return appendHexEscape(dst, c)
	case '>':
		return appendHexEscape(dst, c)
	case '&':
		return appendHexEscape(dst, c)
	default:
		return appendHexEscape(dst, c)
	}
}

func appendHexEscape(dst []byte, c byte) []byte {
	return append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
}

// appendUnicodeEscape appends the \uXXXX (or surrogate-pair \uD8xx\uDCxx
// for supplementary-plane code points) rendering of r.
func appendUnicodeEscape(dst []byte, r rune) []byte {
	if r <= 0xFFFF {
		return appendUTF16Unit(dst, uint16(r))
	}
	r1, r2 := utf16.EncodeRune(r)
	dst = appendUTF16Unit(dst, uint16(r1))
	return appendUTF16Unit(dst, uint16(r2))
}

func appendUTF16Unit(dst []byte, u uint16) []byte {
	return append(dst, '\\', 'u',
		hexDigits[(u>>12)&0xF], hexDigits[(u>>8)&0xF],
		hexDigits[(u>>4)&0xF], hexDigits[u&0xF])
}
