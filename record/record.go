// Package record implements the record envelope: a u8 present-field
// count followed by (u16 field id, value) pairs, with default-valued
// fields omitted and duplicate field IDs rejected.
package record

import (
	"github.com/tephrocactus/lbs-go/errs"
	"github.com/tephrocactus/lbs-go/format"
	"github.com/tephrocactus/lbs-go/internal/fieldset"
	"github.com/tephrocactus/lbs-go/internal/hash"
	"github.com/tephrocactus/lbs-go/wire"
)

const maxFields = 255

// Writer frames a record's present fields, backfilling the leading
// count byte once every field has been written. The backfill technique
// mirrors writing into a reserved header region before its payload's
// final length is known.
type Writer struct {
	w     *wire.Writer
	count int
}

// NewWriter starts a new record, reserving its count byte.
func NewWriter() *Writer {
	w := wire.NewWriter()
	w.WriteUint8(0) // placeholder, backfilled by Finish.

	return &Writer{w: w}
}

// WriteField writes field id's value via encode, unless isDefault is
// true, in which case the field is omitted entirely. It returns
// errs.ErrTooManyFields if the record would exceed 255 present fields.
func (rw *Writer) WriteField(id uint16, isDefault bool, encode func(*wire.Writer)) error {
	if isDefault {
		return nil
	}

	if rw.count >= maxFields {
		return errs.ErrTooManyFields
	}

	rw.w.WriteUint16(id)
	encode(rw.w)
	rw.count++

	return nil
}

// Finish backfills the count byte and returns the record's encoded
// bytes. The Writer must not be used afterward.
func (rw *Writer) Finish() []byte {
	buf := rw.w.Bytes()
	buf[0] = byte(rw.count)

	out := make([]byte, len(buf))
	copy(out, buf)
	rw.w.Release()

	return out
}

// FieldIterator walks a record's present fields in wire order,
// rejecting a repeated field ID via errs.ErrDuplicateFieldID.
type FieldIterator struct {
	r     *wire.Reader
	total int
	seen  *fieldset.Tracker
	idx   int
}

// NewFieldIterator reads data's leading count byte and prepares to walk
// its fields.
func NewFieldIterator(data []byte) (*FieldIterator, error) {
	r := wire.NewReader(data)

	count, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}

	return &FieldIterator{r: r, total: int(count), seen: fieldset.NewTracker(int(count))}, nil
}

// Next advances to the next field, returning its ID. ok is false once
// every present field has been consumed.
func (it *FieldIterator) Next() (id uint16, ok bool, err error) {
	if it.idx >= it.total {
		return 0, false, nil
	}

	id, err = it.r.ReadUint16()
	if err != nil {
		return 0, false, err
	}

	if err := it.seen.See(id); err != nil {
		return 0, false, err
	}

	it.idx++

	return id, true, nil
}

// Reader returns the underlying primitive reader, positioned
// immediately after the most recently yielded field ID, ready to
// decode or skip that field's value.
func (it *FieldIterator) Reader() *wire.Reader { return it.r }

// SkipField advances past the current field's value using tag's
// declared type, for callers that want to decode only a subset of a
// schema's fields and skip the rest instead of rejecting them.
func (it *FieldIterator) SkipField(tag format.TypeTag) error {
	return wire.SkipTag(it.r, tag)
}

// FieldSpec describes one field of a record schema: its wire ID, a
// human-readable name for diagnostics, its declared type, and whether
// it participates in default-omission.
type FieldSpec struct {
	ID   uint16
	Name string
	Type format.TypeTag
	Omit bool
}

// Schema describes a record type's field layout, used to compute a
// stable fingerprint for schema-compatibility checks.
type Schema struct {
	Fields []FieldSpec
}

// NewSchema builds a Schema from fields, rejecting a duplicate field
// ID.
func NewSchema(fields ...FieldSpec) (*Schema, error) {
	seen := make(map[uint16]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.ID]; ok {
			return nil, errs.ErrDuplicateFieldSpec
		}
		seen[f.ID] = struct{}{}
	}

	return &Schema{Fields: fields}, nil
}

// Fingerprint folds every field's (ID, type) pair into a single
// order-sensitive hash, letting a decoder detect a schema mismatch
// before trusting a record's bytes.
func (s *Schema) Fingerprint() uint64 {
	var h uint64
	for _, f := range s.Fields {
		h = hash.Combine(h, uint64(f.ID))
		h = hash.Combine(h, uint64(f.Type))
	}

	return h
}
