package turbojson

// GenericValue adapts an ordinary Go value — the kind DefaultBuilder
// produces, or anything built from the same primitives, slices, and
// string-keyed maps — to EncodeAdapter, so round-tripping through
// DefaultBuilder needs no custom binding code.
type GenericValue struct {
	val any
}

var _ EncodeAdapter = GenericValue{}

// Wrap returns an EncodeAdapter over v. v may be nil, bool, any signed or
// unsigned integer type, float32/float64, string, []any, map[string]any,
// or a type implementing CustomHook, DictMarshaler, or RawJSONMarshaler.
// Anything else encodes as an empty object, the same fallback spec §4.8
// defines for an unrecognized host value.
func Wrap(v any) EncodeAdapter {
	return GenericValue{val: v}
}

// DictMarshaler lets a host type participate in encoding without
// implementing the full CustomHook interface, for types that only need
// the to-dict substitution half of spec §4.8's escape hatch.
type DictMarshaler interface {
	MarshalJSONDict() (any, bool)
}

// RawJSONMarshaler is the raw-bytes half of the same escape hatch: the
// returned bytes are spliced into the output verbatim, without
// re-validation.
type RawJSONMarshaler interface {
	MarshalRawJSON() ([]byte, bool)
}

func (g GenericValue) Kind() ValueKind {
	switch g.val.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64:
		return KindI64
	case uint, uint8, uint16, uint32, uint64:
		return KindU64
	case float32, float64:
		return KindDouble
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindCustom
	}
}

func (g GenericValue) Bool() bool {
	b, _ := g.val.(bool)
	return b
}

func (g GenericValue) I64() int64 {
	switch v := g.val.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

func (g GenericValue) U64() uint64 {
	switch v := g.val.(type) {
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	default:
		return 0
	}
}

func (g GenericValue) Double() float64 {
	switch v := g.val.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

func (g GenericValue) Str() string {
	s, _ := g.val.(string)
	return s
}

func (g GenericValue) ArrayIter() ArrayIter {
	items, _ := g.val.([]any)
	return &genericArrayIter{items: items}
}

func (g GenericValue) ObjectIter() ObjectIter {
	m, _ := g.val.(map[string]any)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return &genericObjectIter{m: m, keys: keys}
}

func (g GenericValue) Custom() CustomHook {
	if hook, ok := g.val.(CustomHook); ok {
		return hook
	}
	return genericHook{g.val}
}

type genericArrayIter struct {
	items []any
	idx   int
}

func (it *genericArrayIter) Next() (EncodeAdapter, bool) {
	if it.idx >= len(it.items) {
		return nil, false
	}
	v := it.items[it.idx]
	it.idx++
	return Wrap(v), true
}

type genericObjectIter struct {
	m    map[string]any
	keys []string
	idx  int
}

func (it *genericObjectIter) Next() (string, EncodeAdapter, bool) {
	if it.idx >= len(it.keys) {
		return "", nil, false
	}
	k := it.keys[it.idx]
	it.idx++
	return k, Wrap(it.m[k]), true
}

// genericHook bridges DictMarshaler/RawJSONMarshaler to CustomHook for any
// value that does not implement CustomHook directly. Both methods report
// "not applicable" for a value implementing neither, which resolveCustom
// (hook.go) turns into the documented "{}" fallback.
type genericHook struct {
	val any
}

func (h genericHook) ToDict() (EncodeAdapter, bool) {
	m, ok := h.val.(DictMarshaler)
	if !ok {
		return nil, false
	}
	d, present := m.MarshalJSONDict()
	if !present {
		return nil, false
	}
	return Wrap(d), true
}

func (h genericHook) ToRawJSON() ([]byte, bool) {
	m, ok := h.val.(RawJSONMarshaler)
	if !ok {
		return nil, false
	}
	return m.MarshalRawJSON()
}
