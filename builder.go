package turbojson

// DefaultBuilder constructs ordinary Go values during Decode: nil, bool,
// int64, uint64, float64, string, []any, and map[string]any. It is the
// Builder binding a caller reaches for when no host-specific object model
// is involved (spec §6.3's decoder vtable, instantiated with Go's own
// dynamic types standing in for the original's tree of dict/list/etc).
type DefaultBuilder struct{}

var _ Builder = DefaultBuilder{}

func (DefaultBuilder) MakeNull() any         { return nil }
func (DefaultBuilder) MakeBool(b bool) any   { return b }
func (DefaultBuilder) MakeI64(n int64) any   { return n }
func (DefaultBuilder) MakeU64(n uint64) any  { return n }
func (DefaultBuilder) MakeDouble(f float64) any { return f }
func (DefaultBuilder) MakeString(s string) any { return s }

func (DefaultBuilder) MakeArray() any {
	return make([]any, 0, 4)
}

func (DefaultBuilder) ArrayPush(arr any, value any) any {
	return append(arr.([]any), value)
}

func (DefaultBuilder) MakeObject() any {
	return make(map[string]any, 4)
}

func (DefaultBuilder) ObjectPut(obj any, key string, value any) any {
	m := obj.(map[string]any)
	m[key] = value
	return m
}
