package turbojson

import (
	"errors"
	"fmt"
)

// Kind identifies one of the flat error categories the engine can return.
// Exactly one Kind is ever reported per call; the engine never wraps or
// aggregates multiple failures.
type Kind int

const (
	// InvalidSyntax covers structural parse errors: stray commas, a
	// missing colon, "[]]", and similar framing violations.
	InvalidSyntax Kind = iota
	// UnterminatedString is reported when EOF is reached inside a quoted string.
	UnterminatedString
	// InvalidEscape covers a malformed \x sequence or an unpaired/invalid
	// surrogate pair encountered while lexing a string.
	InvalidEscape
	// InvalidNumber covers a malformed number literal (no digits, trailing
	// '.', etc).
	InvalidNumber
	// NumberOutOfRange is reported when an integer literal exceeds the
	// representable range of -2^63 .. 2^64-1.
	NumberOutOfRange
	// TrailingGarbage is reported when non-whitespace bytes remain after
	// the top-level value.
	TrailingGarbage
	// DepthExceeded is reported when nesting exceeds the configured limit,
	// on either the encode or decode path.
	DepthExceeded
	// NonFiniteNumber is reported when encoding NaN or ±Inf.
	NonFiniteNumber
	// IntegerOverflow is reported when encoding an integer that does not
	// fit in 64 bits.
	IntegerOverflow
	// InvalidUnicode is reported when encoding malformed UTF-8.
	InvalidUnicode
	// NonStringKey is reported when an object key supplied during encode
	// is not a string.
	NonStringKey
	// InvalidOption is reported when an option value has the wrong type
	// or is out of its documented range.
	InvalidOption
	// InvalidHookResult is reported when a custom-object hook returns a
	// value of the wrong kind.
	InvalidHookResult
	// Internal covers allocation failure or a precondition violation in
	// the engine itself.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidSyntax:
		return "InvalidSyntax"
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidNumber:
		return "InvalidNumber"
	case NumberOutOfRange:
		return "NumberOutOfRange"
	case TrailingGarbage:
		return "TrailingGarbage"
	case DepthExceeded:
		return "DepthExceeded"
	case NonFiniteNumber:
		return "NonFiniteNumber"
	case IntegerOverflow:
		return "IntegerOverflow"
	case InvalidUnicode:
		return "InvalidUnicode"
	case NonStringKey:
		return "NonStringKey"
	case InvalidOption:
		return "InvalidOption"
	case InvalidHookResult:
		return "InvalidHookResult"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the single error type every engine entry point returns. Offset
// is the zero-based byte offset into the input at which the failure was
// detected; it is meaningful only for decode errors and is left at -1 for
// encode errors, which have no input buffer to offset into.
type Error struct {
	Kind    Kind
	Msg     string
	Offset  int
	wrapped error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("turbojson: %s: %s (offset %d)", e.Kind, e.Msg, e.Offset)
	}
	return fmt.Sprintf("turbojson: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the underlying cause (e.g. a string-lexer or number-scan
// error from the internal packages) so callers can use errors.Is/errors.As
// on it.
func (e *Error) Unwrap() error { return e.wrapped }

func newErr(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Offset: offset}
}

func newEncodeErr(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Offset: -1}
}

func wrapErr(kind Kind, offset int, cause error) *Error {
	return &Error{Kind: kind, Msg: cause.Error(), Offset: offset, wrapped: cause}
}

// KindOf reports the Kind of err if it (or something it wraps) is a
// *Error, and whether such an error was found.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
