package batch

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tephrocactus/lbs-go/errs"
	"github.com/tephrocactus/lbs-go/format"
)

func TestWriteRaw_Concatenates(t *testing.T) {
	records := [][]byte{{1, 2}, {3, 4, 5}}
	got := WriteRaw(nil, records)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestReadRaw_SplitsByReportedSize(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	sizes := []int{2, 3}
	i := 0

	got, err := ReadRaw(data, 2, func(b []byte) (int, error) {
		s := sizes[i]
		i++
		return s, nil
	})
	require.NoError(t, err)
	require.Equal(t, [][]byte{{1, 2}, {3, 4, 5}}, got)
}

func TestReadRaw_InsufficientInput(t *testing.T) {
	data := []byte{1, 2}

	_, err := ReadRaw(data, 1, func(b []byte) (int, error) { return 10, nil })
	require.ErrorIs(t, err, errs.ErrInsufficientInput)
}

func TestWriterReader_RoundTrip_NoCompression(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)

	require.NoError(t, w.WriteRecord([]byte("record one")))
	require.NoError(t, w.WriteRecord([]byte("record two")))

	r, err := NewReader(w.Bytes())
	require.NoError(t, err)

	rec1, ok, err := r.ReadRecord()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "record one", string(rec1))

	rec2, ok, err := r.ReadRecord()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "record two", string(rec2))

	_, ok, err = r.ReadRecord()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWriterReader_RoundTrip_WithCompressionAndChecksum(t *testing.T) {
	w, err := NewWriter(WithCompression(format.CompressionS2), WithChecksum(true))
	require.NoError(t, err)

	payload := []byte("a record payload worth compressing, repeated repeated repeated")
	require.NoError(t, w.WriteRecord(payload))

	r, err := NewReader(w.Bytes(), WithCompression(format.CompressionS2), WithChecksum(true))
	require.NoError(t, err)

	got, ok, err := r.ReadRecord()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, payload, got)
}

func TestReader_ChecksumMismatch(t *testing.T) {
	w, err := NewWriter(WithChecksum(true))
	require.NoError(t, err)
	require.NoError(t, w.WriteRecord([]byte("tamper target")))

	data := w.Bytes()
	data[len(data)-1] ^= 0xFF // corrupt the checksum's last byte.

	r, err := NewReader(data, WithChecksum(true))
	require.NoError(t, err)

	_, _, err = r.ReadRecord()
	require.ErrorIs(t, err, errs.ErrSourceError)
}

func TestReader_TruncatedLengthPrefix(t *testing.T) {
	r, err := NewReader([]byte{0x01, 0x02})
	require.NoError(t, err)

	_, _, err = r.ReadRecord()
	require.ErrorIs(t, err, errs.ErrInsufficientInput)
}
