// Package turbojson is a byte-oriented JSON encoder and decoder engine.
//
// It does not know how to walk any particular host language's object
// graph. Instead, callers implement EncodeAdapter over their own values
// (or use GenericValue/Wrap for plain Go data) and a Builder to receive
// decoded output (or use DefaultBuilder for plain Go data); the engine
// drives both vtables byte-for-byte against the JSON grammar.
//
// # Quick start
//
//	out, err := turbojson.Encode(turbojson.Wrap(map[string]any{
//		"ok":    true,
//		"items": []any{1, 2, 3},
//	}))
//
//	val, err := turbojson.Decode(out, turbojson.DefaultBuilder{})
//
// Both Encode and Decode take functional options (WithEnsureASCII,
// WithSortKeys, WithPreciseFloat, and so on); see options.go for the full
// set and their defaults.
//
// # Concurrency
//
// Encode and Decode hold no state across calls beyond a package-level
// sync.Pool of scratch buffers; a single value may safely be encoded from
// multiple goroutines at once, and a *DefaultBuilder (being stateless)
// may be shared freely. An EncodeAdapter or Builder implementation that
// closes over mutable host state is responsible for its own
// synchronization, same as any other Go value passed across goroutines.
//
// # Subpackages
//
//   - internal/jsonnum: integer and double decimal conversion.
//   - internal/jsonstr: string escaping (encode) and lexing (decode).
package turbojson
