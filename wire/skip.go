package wire

import (
	"fmt"

	"github.com/tephrocactus/lbs-go/format"
)

// SkipTag advances r past one value of the type tag identifies, without
// decoding it. It covers every scalar, textual, temporal, and network
// tag, which carry enough information in the tag alone to know their
// wire width.
//
// Composite tags (Optional, Wrapper, Sequence, Map, Set, SmallVec,
// Range, Record, Union) need an element type the tag alone doesn't
// carry, so SkipTag returns an error for them. Optional, Wrapper,
// Sequence, Map, Set, and SmallVec are skipped with the value package's
// Skip functions and Range with SkipRange, each supplied with its own
// element skip callback. The record and union packages provide no skip
// function; a record is walked field by field with
// record.FieldIterator.SkipField.
func SkipTag(r *Reader, tag format.TypeTag) error {
	switch tag {
	case format.TagUnit:
		return r.SkipUnit()
	case format.TagInt8:
		return r.SkipInt8()
	case format.TagInt16:
		return r.SkipInt16()
	case format.TagInt32:
		return r.SkipInt32()
	case format.TagInt64:
		return r.SkipInt64()
	case format.TagInt128:
		return r.SkipInt128()
	case format.TagUint8:
		return r.SkipUint8()
	case format.TagUint16:
		return r.SkipUint16()
	case format.TagUint32:
		return r.SkipUint32()
	case format.TagUint64:
		return r.SkipUint64()
	case format.TagUint128:
		return r.SkipUint128()
	case format.TagUintptr:
		return r.SkipUintptr()
	case format.TagFloat32:
		return r.SkipFloat32()
	case format.TagFloat64:
		return r.SkipFloat64()
	case format.TagBool:
		return r.SkipBool()
	case format.TagRune:
		return r.SkipRune()
	case format.TagString:
		return r.SkipString()
	case format.TagDuration:
		return r.SkipDuration()
	case format.TagInstant:
		return r.SkipInstant()
	case format.TagTimestamp:
		return r.SkipTimestamp()
	case format.TagIPv4:
		return r.SkipIPv4()
	case format.TagIPv6:
		return r.SkipIPv6()
	case format.TagIPAddr:
		return r.SkipIPAddr()
	case format.TagIPNet:
		return r.SkipIPNet()
	default:
		return fmt.Errorf("wire: %s has no element type carried in a TypeTag alone, use its own Skip function", tag)
	}
}
