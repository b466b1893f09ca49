package value

import "github.com/tephrocactus/lbs-go/wire"

// WriteBoxed writes v through encode unchanged. Box, Rc, and Cow are
// transparent on the wire: they describe how a value is owned or
// shared in memory, which has no bearing on the byte sequence it
// encodes to.
func WriteBoxed[T any](w *wire.Writer, v T, encode func(*wire.Writer, T)) {
	encode(w, v)
}

// ReadBoxed reads a value through decode unchanged.
func ReadBoxed[T any](r *wire.Reader, decode func(*wire.Reader) (T, error)) (T, error) {
	return decode(r)
}

// SkipBoxed skips a value through skip unchanged.
func SkipBoxed(r *wire.Reader, skip func(*wire.Reader) error) error {
	return skip(r)
}

// IsDefaultBoxed reports whether the boxed value is its inner type's
// default, by delegating to the inner type's own predicate. A boxed
// default is still omittable from a record field: the wrapper adds no
// wire presence of its own to interfere with omission.
func IsDefaultBoxed[T any](v T, isDefault func(T) bool) bool {
	return isDefault(v)
}
