// Package format defines the small closed enumerations shared across the
// lbs codec: per-value type tags used for internal skip dispatch, and the
// compression algorithm tag used by the batch package.
package format

// TypeTag identifies the shape of a value for code paths that need to
// dispatch on type without decoding it — wire.SkipTag switches on a
// TypeTag to skip a scalar field without a generic decode callback, and
// Schema.Fingerprint folds each declared field's tag into its hash so
// two schemas with the same field IDs but different types don't
// collide. TypeTag is never written to the wire; lbs is not
// self-describing.
type TypeTag uint8

const (
	TagUnit TypeTag = iota + 1
	TagInt8
	TagInt16
	TagInt32
	TagInt64
	TagInt128
	TagUint8
	TagUint16
	TagUint32
	TagUint64
	TagUint128
	TagUintptr
	TagFloat32
	TagFloat64
	TagBool
	TagRune
	TagString
	TagDuration
	TagInstant
	TagTimestamp
	TagIPv4
	TagIPv6
	TagIPAddr
	TagIPNet
	TagRange
	TagOptional
	TagWrapper
	TagSequence
	TagMap
	TagSet
	TagSmallVec
	TagRecord
	TagUnion
)

func (t TypeTag) String() string {
	switch t {
	case TagUnit:
		return "Unit"
	case TagInt8:
		return "Int8"
	case TagInt16:
		return "Int16"
	case TagInt32:
		return "Int32"
	case TagInt64:
		return "Int64"
	case TagInt128:
		return "Int128"
	case TagUint8:
		return "Uint8"
	case TagUint16:
		return "Uint16"
	case TagUint32:
		return "Uint32"
	case TagUint64:
		return "Uint64"
	case TagUint128:
		return "Uint128"
	case TagUintptr:
		return "Uintptr"
	case TagFloat32:
		return "Float32"
	case TagFloat64:
		return "Float64"
	case TagBool:
		return "Bool"
	case TagRune:
		return "Rune"
	case TagString:
		return "String"
	case TagDuration:
		return "Duration"
	case TagInstant:
		return "Instant"
	case TagTimestamp:
		return "Timestamp"
	case TagIPv4:
		return "IPv4"
	case TagIPv6:
		return "IPv6"
	case TagIPAddr:
		return "IPAddr"
	case TagIPNet:
		return "IPNet"
	case TagRange:
		return "Range"
	case TagOptional:
		return "Optional"
	case TagWrapper:
		return "Wrapper"
	case TagSequence:
		return "Sequence"
	case TagMap:
		return "Map"
	case TagSet:
		return "Set"
	case TagSmallVec:
		return "SmallVec"
	case TagRecord:
		return "Record"
	case TagUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// CompressionType selects the algorithm the batch package uses to
// compress individual framed records. It has no bearing on the core
// record/union wire format, which is never compressed in place.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota + 1
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
