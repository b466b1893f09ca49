package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tephrocactus/lbs-go/errs"
)

func TestReadUint32_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	w.WriteUint32(123456)

	r := NewReader(w.Bytes())
	v, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(123456), v)
	require.Equal(t, 0, r.Remaining())
}

func TestReadUint32_InsufficientInput(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.ReadUint32()
	require.ErrorIs(t, err, errs.ErrInsufficientInput)
}

func TestReadBool_InvalidByte(t *testing.T) {
	r := NewReader([]byte{0x02})
	_, err := r.ReadBool()
	require.ErrorIs(t, err, errs.ErrInvalidScalar)
}

func TestReadBool_Valid(t *testing.T) {
	r := NewReader([]byte{0x01, 0x00})

	v, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, v)

	v, err = r.ReadBool()
	require.NoError(t, err)
	require.False(t, v)
}

func TestReadString_InvalidUTF8(t *testing.T) {
	data := append([]byte{0x02, 0x00, 0x00, 0x00}, 0xFF, 0xFE)
	r := NewReader(data)
	_, err := r.ReadString()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestReadString_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	w.WriteString("hello")

	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestReadString_TruncatedPayload(t *testing.T) {
	data := []byte{0x05, 0x00, 0x00, 0x00, 'h', 'i'}
	r := NewReader(data)
	_, err := r.ReadString()
	require.ErrorIs(t, err, errs.ErrInsufficientInput)
}

func TestSkipString_AdvancesPastPayload(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	w.WriteString("skip me")
	w.WriteUint8(0xAB)

	r := NewReader(w.Bytes())
	require.NoError(t, r.SkipString())

	v, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), v)
}

func TestReadIPv4_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	want := IPv4{10, 0, 0, 1}
	w.WriteIPv4(want)

	r := NewReader(w.Bytes())
	got, err := r.ReadIPv4()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadIPv6_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	want := IPv6{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	w.WriteIPv6(want)

	r := NewReader(w.Bytes())
	got, err := r.ReadIPv6()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadIPAddr_UnknownTag(t *testing.T) {
	r := NewReader([]byte{0x02})
	_, err := r.ReadIPAddr()
	require.ErrorIs(t, err, errs.ErrInvalidScalar)
}

func TestReadRune_InvalidScalar(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	w.WriteUint32(0x0000D800) // a surrogate half, not a valid scalar value.

	r := NewReader(w.Bytes())
	_, err := r.ReadRune()
	require.ErrorIs(t, err, errs.ErrInvalidScalar)
}

func TestReadDuration_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	want := Duration{Secs: 90, Nanos: 500}
	w.WriteDuration(want)

	r := NewReader(w.Bytes())
	got, err := r.ReadDuration()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadTimestamp_NegativeSeconds(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	want := Timestamp{Secs: -1000, Nanos: 1}
	w.WriteTimestamp(want)

	r := NewReader(w.Bytes())
	got, err := r.ReadTimestamp()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadRange_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	WriteRange(w, Range[uint32]{Start: 1, End: 9}, func(w *Writer, v uint32) { w.WriteUint32(v) })

	r := NewReader(w.Bytes())
	got, err := ReadRange(r, func(r *Reader) (uint32, error) { return r.ReadUint32() })
	require.NoError(t, err)
	require.Equal(t, Range[uint32]{Start: 1, End: 9}, got)
}

func TestSkipUint128_Advances16Bytes(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	w.WriteUint128(Uint128{Hi: 1, Lo: 2})
	w.WriteUint8(0xCD)

	r := NewReader(w.Bytes())
	require.NoError(t, r.SkipUint128())
	v, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xCD), v)
}
