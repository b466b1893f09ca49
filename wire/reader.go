package wire

import (
	"math"
	"unicode/utf8"

	"github.com/tephrocactus/lbs-go/endian"
	"github.com/tephrocactus/lbs-go/errs"
)

// Reader decodes the full-width, little-endian encoding of primitive
// values from a byte slice. Every Read and Skip method performs its own
// bounds check and returns errs.ErrInsufficientInput on a short buffer.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader over data. data is not copied; it must
// remain valid and unmodified for the Reader's lifetime.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, engine: endian.GetLittleEndianEngine()}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Pos returns the current read offset into the underlying data.
func (r *Reader) Pos() int { return r.pos }

func (r *Reader) require(n int) error {
	if r.Remaining() < n {
		return errs.ErrInsufficientInput
	}

	return nil
}

func (r *Reader) take(n int) []byte {
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b
}

// ReadUnit consumes no bytes; unit has a zero-byte encoding.
func (r *Reader) ReadUnit() {}

// SkipUnit consumes no bytes.
func (r *Reader) SkipUnit() error { return nil }

func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}

	return r.take(1)[0], nil
}

func (r *Reader) SkipUint8() error { return r.skip(1) }

func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()

	return int8(v), err
}

func (r *Reader) SkipInt8() error { return r.skip(1) }

func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}

	return r.engine.Uint16(r.take(2)), nil
}

func (r *Reader) SkipUint16() error { return r.skip(2) }

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()

	return int16(v), err
}

func (r *Reader) SkipInt16() error { return r.skip(2) }

func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}

	return r.engine.Uint32(r.take(4)), nil
}

func (r *Reader) SkipUint32() error { return r.skip(4) }

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()

	return int32(v), err
}

func (r *Reader) SkipInt32() error { return r.skip(4) }

func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}

	return r.engine.Uint64(r.take(8)), nil
}

func (r *Reader) SkipUint64() error { return r.skip(8) }

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()

	return int64(v), err
}

func (r *Reader) SkipInt64() error { return r.skip(8) }

// ReadUintptr reads a pointer-width unsigned integer, always 8 bytes on
// the wire regardless of the decoding process's GOARCH.
func (r *Reader) ReadUintptr() (uint64, error) { return r.ReadUint64() }

func (r *Reader) SkipUintptr() error { return r.skip(8) }

func (r *Reader) ReadUint128() (Uint128, error) {
	lo, err := r.ReadUint64()
	if err != nil {
		return Uint128{}, err
	}

	hi, err := r.ReadUint64()
	if err != nil {
		return Uint128{}, err
	}

	return Uint128{Hi: hi, Lo: lo}, nil
}

func (r *Reader) SkipUint128() error { return r.skip(16) }

func (r *Reader) ReadInt128() (Int128, error) {
	lo, err := r.ReadUint64()
	if err != nil {
		return Int128{}, err
	}

	hi, err := r.ReadInt64()
	if err != nil {
		return Int128{}, err
	}

	return Int128{Hi: hi, Lo: lo}, nil
}

func (r *Reader) SkipInt128() error { return r.skip(16) }

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

func (r *Reader) SkipFloat32() error { return r.skip(4) }

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

func (r *Reader) SkipFloat64() error { return r.skip(8) }

// ReadBool reads a single byte and requires it to be exactly 0x00 or
// 0x01, returning errs.ErrInvalidScalar otherwise.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	if err != nil {
		return false, err
	}

	switch v {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errs.ErrInvalidScalar
	}
}

func (r *Reader) SkipBool() error { return r.skip(1) }

// ReadRune reads a u32 code point and requires it to be a valid Unicode
// scalar value, returning errs.ErrInvalidScalar otherwise.
func (r *Reader) ReadRune() (rune, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	ru := rune(v)
	if !utf8.ValidRune(ru) {
		return 0, errs.ErrInvalidScalar
	}

	return ru, nil
}

func (r *Reader) SkipRune() error { return r.skip(4) }

// ReadString reads a u32 byte length followed by that many bytes,
// requiring them to form valid UTF-8 (errs.ErrInvalidUTF8 otherwise).
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}

	if err := r.require(int(n)); err != nil {
		return "", err
	}

	b := r.take(int(n))
	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	return string(b), nil
}

// SkipString skips a u32 length prefix and its payload without
// validating UTF-8 — skipping only needs to advance past a known-type
// value, not validate it.
func (r *Reader) SkipString() error {
	n, err := r.ReadUint32()
	if err != nil {
		return err
	}

	return r.skip(int(n))
}

func (r *Reader) ReadDuration() (Duration, error) {
	secs, err := r.ReadUint64()
	if err != nil {
		return Duration{}, err
	}

	nanos, err := r.ReadUint32()
	if err != nil {
		return Duration{}, err
	}

	return Duration{Secs: secs, Nanos: nanos}, nil
}

func (r *Reader) SkipDuration() error { return r.skip(12) }

func (r *Reader) ReadInstant() (Instant, error) {
	secs, err := r.ReadUint64()
	if err != nil {
		return Instant{}, err
	}

	nanos, err := r.ReadUint32()
	if err != nil {
		return Instant{}, err
	}

	return Instant{Secs: secs, Nanos: nanos}, nil
}

func (r *Reader) SkipInstant() error { return r.skip(12) }

func (r *Reader) ReadTimestamp() (Timestamp, error) {
	secs, err := r.ReadInt64()
	if err != nil {
		return Timestamp{}, err
	}

	nanos, err := r.ReadUint32()
	if err != nil {
		return Timestamp{}, err
	}

	return Timestamp{Secs: secs, Nanos: nanos}, nil
}

func (r *Reader) SkipTimestamp() error { return r.skip(12) }

// ReadIPv4 reads a little-endian u32 and reconstitutes its four
// network-order octets, inverting Writer.WriteIPv4.
func (r *Reader) ReadIPv4() (IPv4, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return IPv4{}, err
	}

	return IPv4{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

func (r *Reader) SkipIPv4() error { return r.skip(4) }

// ReadIPv6 reads the little-endian 128-bit integer written by
// Writer.WriteIPv6 and reconstitutes its sixteen network-order octets.
func (r *Reader) ReadIPv6() (IPv6, error) {
	lo, err := r.ReadUint64()
	if err != nil {
		return IPv6{}, err
	}

	hi, err := r.ReadUint64()
	if err != nil {
		return IPv6{}, err
	}

	var addr IPv6
	putBE64(addr[0:8], hi)
	putBE64(addr[8:16], lo)

	return addr, nil
}

func putBE64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

func (r *Reader) SkipIPv6() error { return r.skip(16) }

func (r *Reader) ReadIPAddr() (IPAddr, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return IPAddr{}, err
	}

	switch tag {
	case 1:
		v4, err := r.ReadIPv4()
		if err != nil {
			return IPAddr{}, err
		}

		return IPAddr{IsV4: true, V4: v4}, nil
	case 0:
		v6, err := r.ReadIPv6()
		if err != nil {
			return IPAddr{}, err
		}

		return IPAddr{V6: v6}, nil
	default:
		return IPAddr{}, errs.ErrInvalidScalar
	}
}

func (r *Reader) SkipIPAddr() error {
	tag, err := r.ReadUint8()
	if err != nil {
		return err
	}

	switch tag {
	case 1:
		return r.SkipIPv4()
	case 0:
		return r.SkipIPv6()
	default:
		return errs.ErrInvalidScalar
	}
}

func (r *Reader) ReadIPNet() (IPNet, error) {
	addr, err := r.ReadIPAddr()
	if err != nil {
		return IPNet{}, err
	}

	prefix, err := r.ReadUint8()
	if err != nil {
		return IPNet{}, err
	}

	return IPNet{Addr: addr, PrefixLen: prefix}, nil
}

func (r *Reader) SkipIPNet() error {
	if err := r.SkipIPAddr(); err != nil {
		return err
	}

	return r.SkipUint8()
}

// ReadRange reads a range's start and end via the caller-supplied
// decode function.
func ReadRange[T comparable](r *Reader, decode func(*Reader) (T, error)) (Range[T], error) {
	start, err := decode(r)
	if err != nil {
		return Range[T]{}, err
	}

	end, err := decode(r)
	if err != nil {
		return Range[T]{}, err
	}

	return Range[T]{Start: start, End: end}, nil
}

// SkipRange skips a range's start and end via the caller-supplied skip
// function.
func SkipRange(r *Reader, skip func(*Reader) error) error {
	if err := skip(r); err != nil {
		return err
	}

	return skip(r)
}

func (r *Reader) skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.pos += n

	return nil
}
