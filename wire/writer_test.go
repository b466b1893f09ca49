package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tephrocactus/lbs-go/internal/pool"
)

func TestWriteUint32_LittleEndian(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteUint32(42)
	require.Equal(t, []byte{0x2A, 0x00, 0x00, 0x00}, w.Bytes())
}

func TestWriteInt16_Negative(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteInt16(-1)
	require.Equal(t, []byte{0xFF, 0xFF}, w.Bytes())
}

func TestWriteBool(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteBool(true)
	w.WriteBool(false)
	require.Equal(t, []byte{0x01, 0x00}, w.Bytes())
}

func TestWriteString(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteString("hi")
	require.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 'h', 'i'}, w.Bytes())
}

func TestWriteUnit_WritesNoBytes(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteUnit()
	require.Equal(t, 0, w.Len())
}

func TestWriteUint128(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteUint128(Uint128{Hi: 1, Lo: 2})
	require.Len(t, w.Bytes(), 16)
	require.Equal(t, byte(2), w.Bytes()[0], "low half written first")
	require.Equal(t, byte(1), w.Bytes()[8], "high half written second")
}

func TestWriteFloat64(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteFloat64(0)
	require.Equal(t, make([]byte, 8), w.Bytes())
}

func TestWriteIPv4(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteIPv4(IPv4{192, 168, 0, 1})
	// big-endian integer 0xC0A80001 written little-endian.
	require.Equal(t, []byte{0x01, 0x00, 0xA8, 0xC0}, w.Bytes())
}

func TestWriteIPAddr_V4Tag(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteIPAddr(IPAddr{IsV4: true, V4: IPv4{127, 0, 0, 1}})
	require.Equal(t, byte(1), w.Bytes()[0])
	require.Len(t, w.Bytes(), 5)
}

func TestWrapBuffer_SharesUnderlyingBuffer(t *testing.T) {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	w1 := WrapBuffer(buf)
	w1.WriteUint8(1)

	w2 := WrapBuffer(buf)
	w2.WriteUint8(2)

	require.Equal(t, []byte{1, 2}, w2.Bytes())
}

func TestWriteRange(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	WriteRange(w, Range[uint32]{Start: 1, End: 5}, func(w *Writer, v uint32) { w.WriteUint32(v) })
	require.Equal(t, []byte{1, 0, 0, 0, 5, 0, 0, 0}, w.Bytes())
}
