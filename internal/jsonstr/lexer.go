package jsonstr

import (
	"errors"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrUnterminatedString is returned when EOF is reached before the
// closing quote.
var ErrUnterminatedString = errors.New("jsonstr: unterminated string")

// ErrInvalidEscape is returned for a malformed \x sequence, a bad \uXXXX
// hex run, or an unpaired/invalid surrogate pair.
var ErrInvalidEscape = errors.New("jsonstr: invalid escape sequence")

// LexError pairs one of the sentinel errors above with the byte offset
// (into the original input) at which it was detected, so the root
// package can build a positional Error (spec §7/§8: "the same error kind
// at the same byte offset on every invocation").
type LexError struct {
	Err error
	Pos int
}

func (e *LexError) Error() string { return e.Err.Error() }
func (e *LexError) Unwrap() error { return e.Err }

// ScanString decodes the quoted string starting at data[pos] (which must
// be the opening '"') and returns the decoded value, the position just
// past the closing '"', and the scratch buffer (grown/reused as needed,
// and only actually written to if an escape is present).
//
// The fast path (ported from the scan-for-special-byte technique in
// other_examples/a8m-djson's decode.go, see DESIGN.md) converts the run
// straight from data to a string, without touching scratch, whenever the
// run contains no escapes.
func ScanString(data []byte, pos int, scratch []byte) (value string, newPos int, outScratch []byte, err error) {
	if pos >= len(data) || data[pos] != '"' {
		return "", pos, scratch, &LexError{ErrInvalidEscape, pos}
	}
	start := pos + 1
	i := start
	hasEscape := false

scan:
	for {
		if i >= len(data) {
			return "", i, scratch, &LexError{ErrUnterminatedString, i}
		}
		c := data[i]
		switch {
		case c == '"':
			break scan
		case c == '\\':
			hasEscape = true
			i++
			if i >= len(data) {
				return "", i, scratch, &LexError{ErrUnterminatedString, i}
			}
			switch data[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
			case 'u':
				i++
				if !validHex4(data, i) {
					return "", i, scratch, &LexError{ErrInvalidEscape, i}
				}
				i += 4
			default:
				return "", i, scratch, &LexError{ErrInvalidEscape, i}
			}
		case c < 0x20:
			return "", i, scratch, &LexError{ErrInvalidEscape, i}
		default:
			i++
		}
	}

	if !hasEscape {
		return string(data[start:i]), i + 1, scratch, nil
	}

	out := scratch[:0]
	var lerr *LexError
	out, lerr = unescapeInto(out, data[start:i], start)
	if lerr != nil {
		return "", lerr.Pos, scratch, lerr
	}
	return string(out), i + 1, out, nil
}

func validHex4(data []byte, pos int) bool {
	if pos+4 > len(data) {
		return false
	}
	for _, c := range data[pos : pos+4] {
		if !isHex(c) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// unescapeInto decodes the escapes in src (the run strictly between the
// quotes, with no surrounding '"') into dst, where baseOffset is src's
// position in the original input (for error reporting).
func unescapeInto(dst []byte, src []byte, baseOffset int) ([]byte, *LexError) {
	for r := 0; r < len(src); {
		c := src[r]
		if c != '\\' {
			if c < utf8.RuneSelf {
				dst = append(dst, c)
				r++
				continue
			}
			rr, size := utf8.DecodeRune(src[r:])
			if rr == utf8.RuneError && size == 1 {
				return dst, &LexError{ErrInvalidEscape, baseOffset + r}
			}
			dst = append(dst, src[r:r+size]...)
			r += size
			continue
		}

		r++ // consume '\\'
		switch src[r] {
		case '"':
			dst = append(dst, '"')
			r++
		case '\\':
			dst = append(dst, '\\')
			r++
		case '/':
			dst = append(dst, '/')
			r++
		case 'b':
			dst = append(dst, '\b')
			r++
		case 'f':
			dst = append(dst, '\f')
			r++
		case 'n':
			dst = append(dst, '\n')
			r++
		case 'r':
			dst = append(dst, '\r')
			r++
		case 't':
			dst = append(dst, '\t')
			r++
		case 'u':
			r++ // consume 'u'
			unit := decodeHex4(src[r:])
			r += 4
			codepoint := rune(unit)
			if utf16.IsSurrogate(codepoint) {
				if r+6 <= len(src) && src[r] == '\\' && src[r+1] == 'u' {
					lo := decodeHex4(src[r+2:])
					dec := utf16.DecodeRune(codepoint, rune(lo))
					if dec != unicode.ReplacementChar {
						r += 6
						dst = utf8.AppendRune(dst, dec)
						continue
					}
				}
				return dst, &LexError{ErrInvalidEscape, baseOffset + r}
			}
			dst = utf8.AppendRune(dst, codepoint)
		default:
			return dst, &LexError{ErrInvalidEscape, baseOffset + r}
		}
	}
	return dst, nil
}

// decodeHex4 decodes a 4-hex-digit run assumed already validated by
// validHex4 during the scan pass.
func decodeHex4(s []byte) int {
	return hexVal(s[0])<<12 | hexVal(s[1])<<8 | hexVal(s[2])<<4 | hexVal(s[3])
}
