package wire

import (
	"math"

	"github.com/tephrocactus/lbs-go/endian"
	"github.com/tephrocactus/lbs-go/internal/pool"
)

// Writer appends the full-width, little-endian encoding of primitive
// values to a pooled, growable buffer. Writer never fails: every method
// writes a fixed number of bytes for its type, so there is nothing for
// an encode-time error to report.
//
// A Writer is not safe for concurrent use; create one per encode call.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer backed by a buffer drawn from the package's
// buffer pool. Call Release when the Writer is no longer needed, unless
// ownership of the underlying buffer has been transferred elsewhere
// (e.g. via WrapBuffer).
func NewWriter() *Writer {
	return WrapBuffer(pool.GetRecordBuffer())
}

// WrapBuffer creates a Writer that appends to an existing buffer,
// letting callers share one buffer across several Writers.
func WrapBuffer(buf *pool.ByteBuffer) *Writer {
	return &Writer{buf: buf, engine: endian.GetLittleEndianEngine()}
}

// Bytes returns the bytes written so far. The returned slice is valid
// until the next call to a Write method or Release.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// Release returns the underlying buffer to the pool. The Writer must
// not be used afterward.
func (w *Writer) Release() { pool.PutRecordBuffer(w.buf) }

// Reset clears the written bytes, retaining the underlying buffer's
// capacity for reuse.
func (w *Writer) Reset() { w.buf.Reset() }

func (w *Writer) grow(n int) {
	w.buf.Grow(n)
}

// WriteUnit writes nothing; unit's encoding is zero bytes.
func (w *Writer) WriteUnit() {}

func (w *Writer) WriteUint8(v uint8) {
	w.grow(1)
	w.buf.B = append(w.buf.B, v)
}

func (w *Writer) WriteInt8(v int8) { w.WriteUint8(uint8(v)) }

func (w *Writer) WriteUint16(v uint16) {
	w.grow(2)
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

func (w *Writer) WriteInt16(v int16) { w.WriteUint16(uint16(v)) }

func (w *Writer) WriteUint32(v uint32) {
	w.grow(4)
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

func (w *Writer) WriteInt32(v int32) { w.WriteUint32(uint32(v)) }

func (w *Writer) WriteUint64(v uint64) {
	w.grow(8)
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

func (w *Writer) WriteInt64(v int64) { w.WriteUint64(uint64(v)) }

// WriteUintptr writes a pointer-width unsigned integer as a fixed 8
// bytes, independent of GOARCH — the wire format is fixed-width and
// platform-independent.
func (w *Writer) WriteUintptr(v uint64) { w.WriteUint64(v) }

func (w *Writer) WriteUint128(v Uint128) {
	w.WriteUint64(v.Lo)
	w.WriteUint64(v.Hi)
}

func (w *Writer) WriteInt128(v Int128) {
	w.WriteUint64(v.Lo)
	w.WriteInt64(v.Hi)
}

func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(0x01)
		return
	}
	w.WriteUint8(0x00)
}

// WriteRune writes a Unicode scalar value as its u32 code point.
// Callers are expected to pass a valid rune; WriteRune does not
// validate — that's a decode-time concern (see Reader.ReadRune).
func (w *Writer) WriteRune(r rune) {
	w.WriteUint32(uint32(r))
}

// WriteString writes a u32 byte length followed by the string's raw
// UTF-8 bytes.
func (w *Writer) WriteString(s string) {
	w.WriteUint32(uint32(len(s))) //nolint:gosec
	w.grow(len(s))
	w.buf.B = append(w.buf.B, s...)
}

// WriteDuration writes a duration as u64 whole seconds + u32 sub-second
// nanoseconds.
func (w *Writer) WriteDuration(d Duration) {
	w.WriteUint64(d.Secs)
	w.WriteUint32(d.Nanos)
}

// WriteInstant writes a wall-clock instant using the same layout as
// Duration: whole seconds since the epoch plus sub-second nanoseconds.
func (w *Writer) WriteInstant(i Instant) {
	w.WriteUint64(i.Secs)
	w.WriteUint32(i.Nanos)
}

// WriteTimestamp writes a calendar timestamp as i64 seconds + u32
// sub-second nanoseconds.
func (w *Writer) WriteTimestamp(t Timestamp) {
	w.WriteInt64(t.Secs)
	w.WriteUint32(t.Nanos)
}

// WriteIPv4 writes a 32-bit IPv4 address. The four address octets are
// interpreted as a big-endian (network byte order) u32, and that
// integer is then written little-endian.
func (w *Writer) WriteIPv4(addr IPv4) {
	v := uint32(addr[0])<<24 | uint32(addr[1])<<16 | uint32(addr[2])<<8 | uint32(addr[3])
	w.WriteUint32(v)
}

// WriteIPv6 writes a 128-bit IPv6 address, interpreting the 16 network
// byte order octets as a big-endian u128 and writing that integer
// little-endian.
func (w *Writer) WriteIPv6(addr IPv6) {
	hi := beUint64(addr[0:8])
	lo := beUint64(addr[8:16])
	w.WriteUint64(lo)
	w.WriteUint64(hi)
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v
}

// WriteIPAddr writes the tagged IP union: u8 tag (1=v4, 0=v6) followed
// by the address payload.
func (w *Writer) WriteIPAddr(addr IPAddr) {
	if addr.IsV4 {
		w.WriteUint8(1)
		w.WriteIPv4(addr.V4)
		return
	}
	w.WriteUint8(0)
	w.WriteIPv6(addr.V6)
}

// WriteIPNet writes an IP network: the tagged address followed by a u8
// prefix length.
func (w *Writer) WriteIPNet(n IPNet) {
	w.WriteIPAddr(n.Addr)
	w.WriteUint8(n.PrefixLen)
}

// WriteRange writes a range as the full-width encoding of its start and
// end, via the caller-supplied encode function. Ranges never omit
// start/end individually: a record framer's default-omission applies
// only to the whole range field, never to one side of it.
func WriteRange[T comparable](w *Writer, r Range[T], encode func(*Writer, T)) {
	encode(w, r.Start)
	encode(w, r.End)
}
