package value

import "github.com/tephrocactus/lbs-go/wire"

// SmallVecInlineCapacity is the number of elements a SmallVec holds
// without spilling to a heap-allocated slice.
const SmallVecInlineCapacity = 8

// SmallVec is a sequence that stores up to SmallVecInlineCapacity
// elements inline before spilling the rest into a regular slice. Its
// wire encoding is identical to Sequence; the inline/spill split is a
// decode-side memory layout choice only, invisible on the wire.
type SmallVec[T any] struct {
	inline [SmallVecInlineCapacity]T
	n      int
	spill  []T
}

// Len returns the number of elements in v.
func (v *SmallVec[T]) Len() int { return v.n }

// At returns the element at index i, panicking if i is out of range,
// matching slice indexing semantics.
func (v *SmallVec[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic("value: SmallVec index out of range")
	}

	if i < SmallVecInlineCapacity {
		return v.inline[i]
	}

	return v.spill[i-SmallVecInlineCapacity]
}

// Push appends elem to the end of the SmallVec, spilling to the heap once
// the inline capacity is exhausted.
func (v *SmallVec[T]) Push(elem T) {
	if v.n < SmallVecInlineCapacity {
		v.inline[v.n] = elem
		v.n++
		return
	}
	v.spill = append(v.spill, elem)
	v.n++
}

// IsDefault reports whether v is empty, the default for a SmallVec.
func (v *SmallVec[T]) IsDefault() bool { return v.n == 0 }

// WriteSmallVec writes a SmallVec using Sequence's u32-length-prefix
// encoding.
func WriteSmallVec[T any](w *wire.Writer, v *SmallVec[T], encode func(*wire.Writer, T)) {
	w.WriteUint32(uint32(v.n)) //nolint:gosec
	for i := 0; i < v.n; i++ {
		encode(w, v.At(i))
	}
}

// ReadSmallVec reads a SmallVec, filling inline storage first and
// spilling any remainder.
func ReadSmallVec[T any](r *wire.Reader, decode func(*wire.Reader) (T, error)) (*SmallVec[T], error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	out := &SmallVec[T]{}
	if n > SmallVecInlineCapacity {
		out.spill = make([]T, 0, int(n)-SmallVecInlineCapacity)
	}

	for i := uint32(0); i < n; i++ {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out.Push(v)
	}

	return out, nil
}

// SkipSmallVec skips a SmallVec the same way as a Sequence.
func SkipSmallVec(r *wire.Reader, skip func(*wire.Reader) error) error {
	return SkipSlice(r, skip)
}
