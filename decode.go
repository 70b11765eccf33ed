package turbojson

import (
	"github.com/openbindings/turbojson/internal/jsonnum"
	"github.com/openbindings/turbojson/internal/jsonstr"
)

// Decode parses a complete JSON document from data, driving builder to
// construct the result (spec §6.3: the decoder never materializes its own
// tree). The returned value is whatever the top-level MakeX call on
// builder returned.
func Decode(data []byte, builder Builder, opts ...DecodeOption) (any, error) {
	if len(data) > MaxInputSize {
		return nil, newErr(InvalidSyntax, 0, "input of %d bytes exceeds MaxInputSize", len(data))
	}

	o := resolveDecodeOptions(opts)
	d := &decoder{
		data:    data,
		builder: builder,
		opts:    o,
		logger:  traceLoggerOrNoop(o.traceLogger),
	}

	pos := d.skipWhitespace(0)
	val, pos, err := d.parseValue(pos, 0)
	if err != nil {
		return nil, err
	}
	pos = d.skipWhitespace(pos)
	if pos != len(data) {
		return nil, newErr(TrailingGarbage, pos, "unexpected data after top-level value")
	}
	return val, nil
}

type decoder struct {
	data    []byte
	builder Builder
	opts    decodeOptions
	logger  traceLogger

	// scratch is reused across every ScanString call on this decoder to
	// avoid a fresh allocation per string value; jsonstr.ScanString only
	// writes into it when a string actually contains an escape.
	scratch []byte
}

func (d *decoder) skipWhitespace(pos int) int {
	for pos < len(d.data) {
		switch d.data[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// parseValue parses one JSON value starting at data[pos] and returns the
// value, the position just past it, and any error. depth counts the
// number of array/object containers currently open.
func (d *decoder) parseValue(pos int, depth int) (any, int, error) {
	if pos >= len(d.data) {
		return nil, pos, newErr(InvalidSyntax, pos, "unexpected end of input")
	}

	switch c := d.data[pos]; {
	case c == '{':
		return d.parseObject(pos, depth)
	case c == '[':
		return d.parseArray(pos, depth)
	case c == '"':
		return d.parseString(pos)
	case c == 't':
		return d.parseLiteral(pos, "true", d.builder.MakeBool(true))
	case c == 'f':
		return d.parseLiteral(pos, "false", d.builder.MakeBool(false))
	case c == 'n':
		return d.parseLiteral(pos, "null", d.builder.MakeNull())
	case c == '-' || isDigit(c):
		return d.parseNumber(pos)
	default:
		return nil, pos, newErr(InvalidSyntax, pos, "unexpected character %q", c)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (d *decoder) parseLiteral(pos int, lit string, value any) (any, int, error) {
	end := pos + len(lit)
	if end > len(d.data) || string(d.data[pos:end]) != lit {
		return nil, pos, newErr(InvalidSyntax, pos, "invalid literal, expected %q", lit)
	}
	return value, end, nil
}

func (d *decoder) parseString(pos int) (any, int, error) {
	s, newPos, scratch, err := jsonstr.ScanString(d.data, pos, d.scratch)
	d.scratch = scratch
	if err != nil {
		return nil, pos, d.lexErrToErr(err, pos)
	}
	return d.builder.MakeString(s), newPos, nil
}

func (d *decoder) lexErrToErr(err error, fallbackPos int) *Error {
	if le, ok := err.(*jsonstr.LexError); ok {
		switch le.Err {
		case jsonstr.ErrUnterminatedString:
			return wrapErr(UnterminatedString, le.Pos, le.Err)
		case jsonstr.ErrInvalidEscape:
			return wrapErr(InvalidEscape, le.Pos, le.Err)
		}
		return wrapErr(InvalidSyntax, le.Pos, le.Err)
	}
	return wrapErr(InvalidSyntax, fallbackPos, err)
}

func (d *decoder) parseNumber(pos int) (any, int, error) {
	n, err := jsonnum.ScanNumber(d.data, pos)
	if err != nil {
		return nil, pos, wrapErr(InvalidNumber, pos, err)
	}
	span := d.data[n.Start:n.End]

	if !n.IsFloat {
		digitsStart := n.Start
		if n.Negative {
			digitsStart++
		}
		mag, overflow := jsonnum.ParseUintMagnitude(d.data[digitsStart:n.IntEnd])
		if overflow {
			return nil, n.Start, newErr(NumberOutOfRange, n.Start, "integer literal out of -2^63..2^64-1 range")
		}

		if n.Negative {
			if !jsonnum.FitsInt64(mag, true) {
				return nil, n.Start, newErr(NumberOutOfRange, n.Start, "integer literal out of -2^63..2^64-1 range")
			}
			// mag == 1<<63 is math.MinInt64's magnitude, which does not fit
			// in a positive int64; reinterpreting its bits as int64 lands
			// exactly on math.MinInt64, so negating it must be skipped.
			if mag == 1<<63 {
				return d.builder.MakeI64(int64(mag)), n.End, nil
			}
			return d.builder.MakeI64(-int64(mag)), n.End, nil
		}
		if jsonnum.FitsInt64(mag, false) {
			return d.builder.MakeI64(int64(mag)), n.End, nil
		}
		return d.builder.MakeU64(mag), n.End, nil
	}

	var (
		f   float64
		ferr error
	)
	if d.opts.preciseFloat {
		f, ferr = jsonnum.ParseFloatPrecise(span)
	} else {
		f = jsonnum.ParseFloatFast(span)
	}
	if ferr != nil {
		return nil, n.Start, wrapErr(InvalidNumber, n.Start, ferr)
	}
	return d.builder.MakeDouble(f), n.End, nil
}

func (d *decoder) parseArray(pos int, depth int) (any, int, error) {
	if depth >= DecodeDepthLimit {
		d.logger.Error("decode depth exceeded", zapOffsetField(pos), zapDepthField(depth))
		return nil, pos, newErr(DepthExceeded, pos, "array nesting exceeds limit of %d", DecodeDepthLimit)
	}
	pos++ // consume '['
	arr := d.builder.MakeArray()

	pos = d.skipWhitespace(pos)
	if pos < len(d.data) && d.data[pos] == ']' {
		return arr, pos + 1, nil
	}

	for {
		pos = d.skipWhitespace(pos)
		var (
			elem any
			err  error
		)
		elem, pos, err = d.parseValue(pos, depth+1)
		if err != nil {
			return nil, pos, err
		}
		arr = d.builder.ArrayPush(arr, elem)

		pos = d.skipWhitespace(pos)
		if pos >= len(d.data) {
			return nil, pos, newErr(InvalidSyntax, pos, "unterminated array")
		}
		switch d.data[pos] {
		case ',':
			pos++
		case ']':
			return arr, pos + 1, nil
		default:
			return nil, pos, newErr(InvalidSyntax, pos, "expected ',' or ']' in array")
		}
	}
}

func (d *decoder) parseObject(pos int, depth int) (any, int, error) {
	if depth >= DecodeDepthLimit {
		d.logger.Error("decode depth exceeded", zapOffsetField(pos), zapDepthField(depth))
		return nil, pos, newErr(DepthExceeded, pos, "object nesting exceeds limit of %d", DecodeDepthLimit)
	}
	pos++ // consume '{'
	obj := d.builder.MakeObject()

	pos = d.skipWhitespace(pos)
	if pos < len(d.data) && d.data[pos] == '}' {
		return obj, pos + 1, nil
	}

	for {
		pos = d.skipWhitespace(pos)
		if pos >= len(d.data) || d.data[pos] != '"' {
			return nil, pos, newErr(InvalidSyntax, pos, "expected string key")
		}
		key, newPos, scratch, err := jsonstr.ScanString(d.data, pos, d.scratch)
		d.scratch = scratch
		if err != nil {
			return nil, pos, d.lexErrToErr(err, pos)
		}
		pos = newPos

		pos = d.skipWhitespace(pos)
		if pos >= len(d.data) || d.data[pos] != ':' {
			return nil, pos, newErr(InvalidSyntax, pos, "expected ':' after object key")
		}
		pos++

		pos = d.skipWhitespace(pos)
		var value any
		value, pos, err = d.parseValue(pos, depth+1)
		if err != nil {
			return nil, pos, err
		}
		obj = d.builder.ObjectPut(obj, key, value)

		pos = d.skipWhitespace(pos)
		if pos >= len(d.data) {
			return nil, pos, newErr(InvalidSyntax, pos, "unterminated object")
		}
		switch d.data[pos] {
		case ',':
			pos++
		case '}':
			return obj, pos + 1, nil
		default:
			return nil, pos, newErr(InvalidSyntax, pos, "expected ',' or '}' in object")
		}
	}
}
