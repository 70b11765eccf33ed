package turbojson

// resolveCustom implements the host-object escape hatch for an
// unrecognized value: a KindCustom value gets two chances to produce
// something the encoder can actually write before falling back to "{}".
// The raw-JSON hook's bytes are spliced into the output buffer verbatim,
// without re-validation, treating them as an opaque pre-validated unit
// rather than something to re-parse.
func resolveCustom(hook CustomHook) (dict EncodeAdapter, raw []byte, isRaw bool, ok bool) {
	if hook == nil {
		return nil, nil, false, false
	}
	if b, present := hook.ToRawJSON(); present {
		return nil, b, true, true
	}
	if d, present := hook.ToDict(); present {
		return d, nil, false, true
	}
	return nil, nil, false, false
}
