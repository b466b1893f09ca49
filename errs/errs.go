// Package errs defines the sentinel errors returned by the lbs codec.
//
// The wire, record, union, and batch encode/decode paths return one of
// these errors (optionally wrapped with additional context via
// fmt.Errorf's %w verb), never a locally-defined error type. Callers can
// compare with errors.Is. The exceptions are compress's codec lookup and
// codecs and wire.SkipTag on a composite tag, whose errors wrap none of
// these sentinels.
package errs

import "errors"

var (
	// ErrInsufficientInput is returned when a decoder reaches the end of
	// its input mid-value.
	ErrInsufficientInput = errors.New("lbs: insufficient input")

	// ErrInvalidUTF8 is returned when string bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("lbs: invalid utf-8")

	// ErrInvalidScalar is returned when a decoded value falls outside its
	// domain (a rune that is not a valid Unicode scalar value, a bool
	// byte that is neither 0x00 nor 0x01, ...).
	ErrInvalidScalar = errors.New("lbs: invalid scalar value")

	// ErrUnknownFieldID is returned when a record decode encounters a
	// field ID absent from the schema.
	ErrUnknownFieldID = errors.New("lbs: unknown field id")

	// ErrUnknownVariantID is returned when a union decode encounters a
	// variant ID absent from the schema.
	ErrUnknownVariantID = errors.New("lbs: unknown variant id")

	// ErrTooManyFields is returned when encoding a record would write
	// more than 255 present fields.
	ErrTooManyFields = errors.New("lbs: record has more than 255 present fields")

	// ErrDuplicateFieldID is returned when a record decode sees the same
	// field ID twice. Last-wins is not a supported mode.
	ErrDuplicateFieldID = errors.New("lbs: duplicate field id in record")

	// ErrDuplicateVariant is returned when a schema declares the same
	// variant ID twice; this is a programmer error caught at schema
	// construction time, not a wire-format error.
	ErrDuplicateVariant = errors.New("lbs: duplicate variant id in schema")

	// ErrDuplicateFieldSpec is returned when a schema declares the same
	// field ID twice; a programmer error caught at schema construction
	// time, not a wire-format error.
	ErrDuplicateFieldSpec = errors.New("lbs: duplicate field id in schema")

	// ErrSinkError wraps a failure from the underlying byte sink during
	// encode.
	ErrSinkError = errors.New("lbs: sink error")

	// ErrSourceError wraps a failure from the underlying byte source
	// during decode.
	ErrSourceError = errors.New("lbs: source error")
)
