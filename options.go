package turbojson

// encodeOptions holds the resolved configuration for a single Encode/
// EncodeToSink call. It is unexported; callers only ever see the
// EncodeOption constructors below, a default-struct-then-apply-closures
// functional-option shape.
type encodeOptions struct {
	ensureASCII           bool
	encodeHTMLChars       bool
	escapeForwardSlashes  bool
	doublePrecision       int
	sortKeys              bool
	intAsStringBitCount   int
	traceLogger           traceLogger
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{
		ensureASCII:          true,
		encodeHTMLChars:      false,
		escapeForwardSlashes: true,
		doublePrecision:      -1, // sentinel: clampPrecision resolves this to the documented default of 10
		sortKeys:             false,
		intAsStringBitCount:  0, // disabled
	}
}

// EncodeOption configures a single Encode or EncodeToSink call.
type EncodeOption func(*encodeOptions)

// WithEnsureASCII controls whether non-ASCII bytes are emitted as \uXXXX
// escapes. Default true.
func WithEnsureASCII(v bool) EncodeOption {
	return func(o *encodeOptions) { o.ensureASCII = v }
}

// WithEncodeHTMLChars additionally escapes '<', '>', and '&' as \u00XX.
// Default false.
func WithEncodeHTMLChars(v bool) EncodeOption {
	return func(o *encodeOptions) { o.encodeHTMLChars = v }
}

// WithEscapeForwardSlashes controls whether '/' is emitted as '\/'.
// Default true.
func WithEscapeForwardSlashes(v bool) EncodeOption {
	return func(o *encodeOptions) { o.escapeForwardSlashes = v }
}

// WithDoublePrecision sets the number of decimal digits after the integer
// part for doubles. Values above 15 clamp to 15; the default is 10, which
// is also what -1 selects. Values below -1 are not clamped: Encode fails
// with InvalidOption.
func WithDoublePrecision(p int) EncodeOption {
	return func(o *encodeOptions) { o.doublePrecision = p }
}

// WithSortKeys enumerates object keys in sorted order rather than in
// whatever order the binding's ObjectIter produces.
func WithSortKeys(v bool) EncodeOption {
	return func(o *encodeOptions) { o.sortKeys = v }
}

// WithIntAsStringBitCount re-renders integers whose magnitude is at least
// 2^n as JSON strings instead of bare numbers, for hosts whose native
// numeric type loses precision past that point (an int_as_string_bitcount
// -style knob; see SPEC_FULL.md §5 for the grounding caveat). n<=0
// disables the behavior, which is the default.
func WithIntAsStringBitCount(n int) EncodeOption {
	return func(o *encodeOptions) { o.intAsStringBitCount = n }
}

// WithTraceLogger attaches an optional structured trace logger (log.go)
// for diagnosing depth-limit failures (the only events it logs). Unset by
// default, adding no overhead.
func WithTraceLogger(l traceLogger) EncodeOption {
	return func(o *encodeOptions) { o.traceLogger = l }
}

func resolveEncodeOptions(opts []EncodeOption) (encodeOptions, error) {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.doublePrecision < -1 {
		return o, newEncodeErr(InvalidOption, "double_precision must be >= 0, got %d", o.doublePrecision)
	}
	o.doublePrecision = clampPrecision(o.doublePrecision)
	return o, nil
}

// decodeOptions holds the resolved configuration for a single Decode call.
type decodeOptions struct {
	preciseFloat bool
	traceLogger  traceLogger
}

func defaultDecodeOptions() decodeOptions {
	return decodeOptions{preciseFloat: false}
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeOptions)

// WithPreciseFloat selects the slower, exact decimal-to-double conversion
// path over the default fast approximate one. Default false.
func WithPreciseFloat(v bool) DecodeOption {
	return func(o *decodeOptions) { o.preciseFloat = v }
}

// WithDecodeTraceLogger attaches an optional structured trace logger.
func WithDecodeTraceLogger(l traceLogger) DecodeOption {
	return func(o *decodeOptions) { o.traceLogger = l }
}

func resolveDecodeOptions(opts []DecodeOption) decodeOptions {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
