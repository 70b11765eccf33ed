package turbojson

import (
	"sort"
	"sync"

	"github.com/openbindings/turbojson/internal/jsonnum"
	"github.com/openbindings/turbojson/internal/jsonstr"
)

// initialBufferSize is the encoder's starting output-buffer capacity
// (spec §4.1: "Initial capacity 32 KiB"). append() already doubles
// capacity on growth, so this package leans on Go slice growth instead of
// hand-rolling a realloc loop; the buffer pool below follows the same
// reusable-scratch-buffer idiom (see DESIGN.md).
const initialBufferSize = 32 * 1024

var encoderBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, initialBufferSize)
		return &b
	},
}

// Encode serializes value into a freshly allocated byte slice.
func Encode(value EncodeAdapter, opts ...EncodeOption) ([]byte, error) {
	o, err := resolveEncodeOptions(opts)
	if err != nil {
		return nil, err
	}

	bufp := encoderBufPool.Get().(*[]byte)
	buf := (*bufp)[:0]
	defer func() {
		*bufp = buf[:0]
		encoderBufPool.Put(bufp)
	}()

	e := &encoder{opts: o, logger: traceLoggerOrNoop(o.traceLogger)}
	buf, err = e.writeValue(buf, value, 0)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// EncodeToSink serializes value and invokes sink exactly once with the
// completed byte span, once encoding succeeds (spec §6.1). sink borrows
// the bytes only for the duration of the call; it must copy anything it
// wants to retain.
func EncodeToSink(value EncodeAdapter, sink func([]byte) error, opts ...EncodeOption) error {
	b, err := Encode(value, opts...)
	if err != nil {
		return err
	}
	return sink(b)
}

type encoder struct {
	opts   encodeOptions
	logger traceLogger
}

func (e *encoder) writeValue(dst []byte, v EncodeAdapter, depth int) ([]byte, error) {
	if v == nil {
		return append(dst, "null"...), nil
	}

	switch v.Kind() {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if v.Bool() {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindI64:
		return e.writeInt64(dst, v.I64()), nil
	case KindU64:
		return e.writeUint64(dst, v.U64()), nil
	case KindDouble:
		out, err := jsonnum.AppendDouble(dst, v.Double(), e.opts.doublePrecision)
		if err != nil {
			return dst, newEncodeErr(NonFiniteNumber, "cannot encode non-finite double")
		}
		return out, nil
	case KindString:
		out, err := jsonstr.AppendEscaped(dst, v.Str(), jsonstr.Options{
			EnsureASCII:          e.opts.ensureASCII,
			EncodeHTMLChars:      e.opts.encodeHTMLChars,
			EscapeForwardSlashes: e.opts.escapeForwardSlashes,
		})
		if err != nil {
			return dst, newEncodeErr(InvalidUnicode, "malformed UTF-8 or unpaired surrogate in string")
		}
		return out, nil
	case KindArray:
		return e.writeArray(dst, v.ArrayIter(), depth)
	case KindObject:
		return e.writeObject(dst, v.ObjectIter(), depth)
	case KindCustom:
		return e.writeCustom(dst, v.Custom(), depth)
	default:
		return dst, newEncodeErr(Internal, "unrecognized value kind %v", v.Kind())
	}
}

func (e *encoder) writeInt64(dst []byte, n int64) []byte {
	bitCount := e.opts.intAsStringBitCount
	if bitCount > 0 && exceedsBitCount(magnitudeOf(n), bitCount) {
		dst = append(dst, '"')
		dst = jsonnum.AppendInt64(dst, n)
		return append(dst, '"')
	}
	return jsonnum.AppendInt64(dst, n)
}

func (e *encoder) writeUint64(dst []byte, n uint64) []byte {
	bitCount := e.opts.intAsStringBitCount
	if bitCount > 0 && exceedsBitCount(n, bitCount) {
		dst = append(dst, '"')
		dst = jsonnum.AppendUint64(dst, n)
		return append(dst, '"')
	}
	return jsonnum.AppendUint64(dst, n)
}

func magnitudeOf(n int64) uint64 {
	if n >= 0 {
		return uint64(n)
	}
	return ^uint64(n) + 1
}

func exceedsBitCount(mag uint64, bitCount int) bool {
	if bitCount >= 64 {
		return false
	}
	return mag >= uint64(1)<<uint(bitCount)
}

func (e *encoder) writeArray(dst []byte, it ArrayIter, depth int) ([]byte, error) {
	if depth >= EncodeDepthLimit {
		e.logger.Error("encode depth exceeded", zapDepthField(depth))
		return dst, newEncodeErr(DepthExceeded, "array nesting exceeds limit of %d", EncodeDepthLimit)
	}
	dst = append(dst, '[')
	if it == nil {
		return append(dst, ']'), nil
	}
	first := true
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			dst = append(dst, ',')
		}
		first = false
		var err error
		dst, err = e.writeValue(dst, elem, depth+1)
		if err != nil {
			return dst, err
		}
	}
	return append(dst, ']'), nil
}

func (e *encoder) writeObject(dst []byte, it ObjectIter, depth int) ([]byte, error) {
	if depth >= EncodeDepthLimit {
		e.logger.Error("encode depth exceeded", zapDepthField(depth))
		return dst, newEncodeErr(DepthExceeded, "object nesting exceeds limit of %d", EncodeDepthLimit)
	}
	dst = append(dst, '{')
	if it == nil {
		return append(dst, '}'), nil
	}

	if !e.opts.sortKeys {
		first := true
		for {
			k, val, ok := it.Next()
			if !ok {
				break
			}
			var err error
			dst, err = e.writeMember(dst, k, val, depth, !first)
			if err != nil {
				return dst, err
			}
			first = false
		}
		return append(dst, '}'), nil
	}

	// sort_keys requires the full key set up front, so this path alone
	// gives up single-pass streaming (spec §5: order is "whatever the
	// binding's object-iterator callback produces, unless sort_keys is
	// set").
	type kv struct {
		key   string
		value EncodeAdapter
	}
	var pairs []kv
	for {
		k, val, ok := it.Next()
		if !ok {
			break
		}
		pairs = append(pairs, kv{k, val})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	for i, p := range pairs {
		var err error
		dst, err = e.writeMember(dst, p.key, p.value, depth, i > 0)
		if err != nil {
			return dst, err
		}
	}
	return append(dst, '}'), nil
}

func (e *encoder) writeMember(dst []byte, key string, value EncodeAdapter, depth int, needsComma bool) ([]byte, error) {
	if needsComma {
		dst = append(dst, ',')
	}
	dst, err := jsonstr.AppendEscaped(dst, key, jsonstr.Options{
		EnsureASCII:          e.opts.ensureASCII,
		EncodeHTMLChars:      e.opts.encodeHTMLChars,
		EscapeForwardSlashes: e.opts.escapeForwardSlashes,
	})
	if err != nil {
		return dst, newEncodeErr(InvalidUnicode, "malformed UTF-8 in object key")
	}
	dst = append(dst, ':')
	return e.writeValue(dst, value, depth+1)
}

func (e *encoder) writeCustom(dst []byte, hook CustomHook, depth int) ([]byte, error) {
	dict, raw, isRaw, ok := resolveCustom(hook)
	switch {
	case !ok:
		return append(dst, '{', '}'), nil
	case isRaw:
		return append(dst, raw...), nil
	default:
		return e.writeValue(dst, dict, depth)
	}
}
