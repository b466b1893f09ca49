// Package value implements the composite codec: generic encode/decode/
// skip functions for Optional, Box/Rc/Cow wrappers, Sequence, Map, Set,
// and SmallVec, layered on top of the wire package's primitive codec.
package value

import "github.com/tephrocactus/lbs-go/wire"

const (
	optionalAbsent  byte = 0x00
	optionalPresent byte = 0x01
)

// WriteOptional writes v as an absent (0x00) or present (0x01) tag
// followed by the inner value's full-width encoding when present.
// Unlike a record field, a present value is always written in full:
// default-omission applies only to record fields, not to the
// present/absent tag itself.
func WriteOptional[T any](w *wire.Writer, v T, present bool, encode func(*wire.Writer, T)) {
	if !present {
		w.WriteUint8(uint8(optionalAbsent))
		return
	}
	w.WriteUint8(uint8(optionalPresent))
	encode(w, v)
}

// ReadOptional reads an Optional's tag and, if present, its inner
// value. The returned bool reports presence; when false the returned
// value is the zero value of T.
func ReadOptional[T any](r *wire.Reader, decode func(*wire.Reader) (T, error)) (T, bool, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		var zero T
		return zero, false, err
	}

	if tag == uint8(optionalAbsent) {
		var zero T
		return zero, false, nil
	}

	v, err := decode(r)
	if err != nil {
		var zero T
		return zero, false, err
	}

	return v, true, nil
}

// SkipOptional skips an Optional's tag and, if present, its inner
// value.
func SkipOptional(r *wire.Reader, skip func(*wire.Reader) error) error {
	tag, err := r.ReadUint8()
	if err != nil {
		return err
	}

	if tag == uint8(optionalAbsent) {
		return nil
	}

	return skip(r)
}
