package value

import (
	"cmp"
	"slices"

	"github.com/tephrocactus/lbs-go/wire"
)

// WriteSlice writes a u32 element count followed by each element's
// full-width encoding, in order.
func WriteSlice[T any](w *wire.Writer, s []T, encode func(*wire.Writer, T)) {
	w.WriteUint32(uint32(len(s))) //nolint:gosec
	for _, v := range s {
		encode(w, v)
	}
}

// ReadSlice reads a sequence, pre-allocating its backing array from the
// wire length prefix.
func ReadSlice[T any](r *wire.Reader, decode func(*wire.Reader) (T, error)) ([]T, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// SkipSlice skips a Sequence's length prefix and every element.
func SkipSlice(r *wire.Reader, skip func(*wire.Reader) error) error {
	n, err := r.ReadUint32()
	if err != nil {
		return err
	}

	for i := uint32(0); i < n; i++ {
		if err := skip(r); err != nil {
			return err
		}
	}

	return nil
}

// IsDefaultSlice reports whether s is empty, the default for a
// sequence, map, or set.
func IsDefaultSlice[T any](s []T) bool { return len(s) == 0 }

// WriteOrderedMap writes a map whose key type has a total order,
// encoding entries sorted by key so that two encoders never disagree on
// byte layout for the same logical map.
func WriteOrderedMap[K cmp.Ordered, V any](w *wire.Writer, m map[K]V, encodeKey func(*wire.Writer, K), encodeVal func(*wire.Writer, V)) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	w.WriteUint32(uint32(len(keys))) //nolint:gosec
	for _, k := range keys {
		encodeKey(w, k)
		encodeVal(w, m[k])
	}
}

// WriteMap writes a map in unspecified (Go map) iteration order, for
// key types with no total order. Two encodes of the same logical map
// may differ byte-for-byte; callers that need a stable encoding for an
// orderable key type should use WriteOrderedMap instead.
func WriteMap[K comparable, V any](w *wire.Writer, m map[K]V, encodeKey func(*wire.Writer, K), encodeVal func(*wire.Writer, V)) {
	w.WriteUint32(uint32(len(m))) //nolint:gosec
	for k, v := range m {
		encodeKey(w, k)
		encodeVal(w, v)
	}
}

// ReadMap reads a map's u32 entry count followed by that many key/value
// pairs. A repeated key overwrites the earlier entry (last-wins).
func ReadMap[K comparable, V any](r *wire.Reader, decodeKey func(*wire.Reader) (K, error), decodeVal func(*wire.Reader) (V, error)) (map[K]V, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	out := make(map[K]V, n)
	for i := uint32(0); i < n; i++ {
		k, err := decodeKey(r)
		if err != nil {
			return nil, err
		}

		v, err := decodeVal(r)
		if err != nil {
			return nil, err
		}

		out[k] = v
	}

	return out, nil
}

// SkipMap skips a Map's entry count and every key/value pair.
func SkipMap(r *wire.Reader, skipKey, skipVal func(*wire.Reader) error) error {
	n, err := r.ReadUint32()
	if err != nil {
		return err
	}

	for i := uint32(0); i < n; i++ {
		if err := skipKey(r); err != nil {
			return err
		}
		if err := skipVal(r); err != nil {
			return err
		}
	}

	return nil
}

// IsDefaultMap reports whether m is empty.
func IsDefaultMap[K comparable, V any](m map[K]V) bool { return len(m) == 0 }

// WriteOrderedSet writes a Set whose element type has a total order, in
// sorted order.
func WriteOrderedSet[T cmp.Ordered](w *wire.Writer, s map[T]struct{}, encode func(*wire.Writer, T)) {
	elems := make([]T, 0, len(s))
	for v := range s {
		elems = append(elems, v)
	}
	slices.Sort(elems)

	w.WriteUint32(uint32(len(elems))) //nolint:gosec
	for _, v := range elems {
		encode(w, v)
	}
}

// WriteSet writes a Set in unspecified iteration order, for element
// types with no total order.
func WriteSet[T comparable](w *wire.Writer, s map[T]struct{}, encode func(*wire.Writer, T)) {
	w.WriteUint32(uint32(len(s))) //nolint:gosec
	for v := range s {
		encode(w, v)
	}
}

// ReadSet reads a set's u32 element count followed by that many
// elements. A repeated element is a no-op (sets are naturally
// idempotent on insert).
func ReadSet[T comparable](r *wire.Reader, decode func(*wire.Reader) (T, error)) (map[T]struct{}, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	out := make(map[T]struct{}, n)
	for i := uint32(0); i < n; i++ {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}

	return out, nil
}

// SkipSet skips a Set's element count and every element.
func SkipSet(r *wire.Reader, skip func(*wire.Reader) error) error {
	return SkipSlice(r, skip)
}

// IsDefaultSet reports whether s is empty.
func IsDefaultSet[T comparable](s map[T]struct{}) bool { return len(s) == 0 }
