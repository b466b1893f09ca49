// Package union implements the tagged-union envelope: a u8 variant ID
// followed by that variant's payload, if any.
package union

import (
	"github.com/tephrocactus/lbs-go/errs"
	"github.com/tephrocactus/lbs-go/format"
	"github.com/tephrocactus/lbs-go/internal/hash"
	"github.com/tephrocactus/lbs-go/wire"
)

// Writer frames a single tagged union value. Unlike record.Writer,
// there is no count to backfill: a union always has exactly one
// variant, so the tag can be written immediately.
type Writer struct {
	w *wire.Writer
}

// NewWriter starts a new union encode.
func NewWriter() *Writer {
	return &Writer{w: wire.NewWriter()}
}

// WriteVariant writes id followed by encodePayload's output, if
// encodePayload is non-nil. A nil encodePayload corresponds to a
// payload-less variant.
func (uw *Writer) WriteVariant(id uint8, encodePayload func(*wire.Writer)) {
	uw.w.WriteUint8(id)
	if encodePayload != nil {
		encodePayload(uw.w)
	}
}

// Finish returns the union's encoded bytes. The Writer must not be used
// afterward.
func (uw *Writer) Finish() []byte {
	buf := uw.w.Bytes()
	out := make([]byte, len(buf))
	copy(out, buf)
	uw.w.Release()

	return out
}

// Reader decodes a tagged union's variant ID, leaving the payload, if
// any, for the caller to decode via Reader().
type Reader struct {
	r *wire.Reader
}

// NewReader wraps data for union decode.
func NewReader(data []byte) *Reader {
	return &Reader{r: wire.NewReader(data)}
}

// ReadVariantID reads the union's variant tag.
func (ur *Reader) ReadVariantID() (uint8, error) {
	return ur.r.ReadUint8()
}

// Reader returns the underlying primitive reader, positioned
// immediately after the variant tag, ready to decode the variant's
// payload.
func (ur *Reader) Reader() *wire.Reader { return ur.r }

// VariantSpec describes one variant of a union schema: its wire ID, a
// human-readable name, and its payload type, if it carries one.
type VariantSpec struct {
	ID          uint8
	Name        string
	PayloadType *format.TypeTag
}

// Schema describes a union type's variant layout.
type Schema struct {
	Variants []VariantSpec
}

// NewSchema builds a Schema from variants, rejecting a duplicate
// variant ID.
func NewSchema(variants ...VariantSpec) (*Schema, error) {
	seen := make(map[uint8]struct{}, len(variants))
	for _, v := range variants {
		if _, ok := seen[v.ID]; ok {
			return nil, errs.ErrDuplicateVariant
		}
		seen[v.ID] = struct{}{}
	}

	return &Schema{Variants: variants}, nil
}

// Fingerprint folds every variant's (ID, payload type) pair into a
// single order-sensitive hash.
func (s *Schema) Fingerprint() uint64 {
	var h uint64
	for _, v := range s.Variants {
		h = hash.Combine(h, uint64(v.ID))
		if v.PayloadType != nil {
			h = hash.Combine(h, uint64(*v.PayloadType))
		}
	}

	return h
}
