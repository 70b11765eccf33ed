package turbojson

// ValueKind is the runtime tag of an abstract value flowing through the
// encoder. It stands in for the dynamic-typed host value polymorphism of
// the original engine (spec §9): a binding reports one of these tags per
// value instead of the core doing any reflection.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindI64
	KindU64
	KindDouble
	KindString
	KindArray
	KindObject
	KindCustom
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindI64:
		return "i64"
	case KindU64:
		return "u64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// EncodeAdapter is the encoder-side binding vtable (spec §6.3). A host
// value is never inspected by reflection; it is wrapped in a type
// implementing this interface, which the encoder drives depth-first,
// left-to-right.
//
// Arrays and objects are iterator handles, not materialized collections,
// to preserve lazy, single-pass traversal (spec §9): ArrayIter/ObjectIter
// are only asked for their next element as the writer reaches that
// position in the frame, and are never buffered in full, with one
// exception: when sort keys is on, the encoder drains ObjectIter up front
// so it can sort the pairs.
type EncodeAdapter interface {
	// Kind reports which accessor below is valid to call.
	Kind() ValueKind

	Bool() bool
	I64() int64
	U64() uint64
	Double() float64
	// Str returns the value's UTF-8 bytes. The returned string is only
	// borrowed for the duration of the current callback; the encoder
	// copies out whatever it needs to retain (spec §5).
	Str() string

	// ArrayIter is called once, at KindArray; it owns its own iteration
	// state.
	ArrayIter() ArrayIter
	// ObjectIter is called once, at KindObject.
	ObjectIter() ObjectIter
	// Custom is called once, at KindCustom, to obtain the escape-hatch
	// hooks described in spec §4.8.
	Custom() CustomHook
}

// ArrayIter yields successive array elements. Next returns (nil, false)
// once exhausted.
type ArrayIter interface {
	Next() (EncodeAdapter, bool)
}

// ObjectIter yields successive object (key, value) pairs in whatever
// order the binding produces, unless WithSortKeys(true) is set (spec
// §5: "key-value pair order is whatever the binding's object-iterator
// callback produces, unless sort_keys is set").
type ObjectIter interface {
	Next() (key string, value EncodeAdapter, ok bool)
}

// CustomHook is the pair of escape-hatch hooks spec §4.8 describes for
// host values the binding does not otherwise recognize.
type CustomHook interface {
	// ToDict re-enters the encoder with a substitute object value. The
	// second return is false if this hook does not apply.
	ToDict() (EncodeAdapter, bool)
	// ToRawJSON returns a pre-formed UTF-8 JSON byte span to splice in
	// verbatim, without re-validation. The second return is false if
	// this hook does not apply.
	ToRawJSON() ([]byte, bool)
}

// Builder is the decoder-side binding vtable (spec §6.3). The decoder
// never materializes its own tree; every constructed value is produced by
// calling into Builder, whose return values are then threaded back in as
// the array/object being built.
type Builder interface {
	MakeNull() any
	MakeBool(b bool) any
	MakeI64(n int64) any
	MakeU64(n uint64) any
	MakeDouble(d float64) any
	MakeString(s string) any

	MakeArray() any
	ArrayPush(arr any, value any) any

	MakeObject() any
	ObjectPut(obj any, key string, value any) any
}
