package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tephrocactus/lbs-go/format"
)

func TestGetCodec_AllBuiltins(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(99))
	require.Error(t, err)
}

func TestCreateCodec_Unknown(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(99), "batch writer")
	require.ErrorContains(t, err, "batch writer")
}

func TestNoOpCompressor_RoundTrip(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte("hello lbs")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	original, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, original)
}

func TestS2Compressor_RoundTrip(t *testing.T) {
	c := NewS2Compressor()
	data := []byte("a record payload worth compressing, repeated repeated repeated")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	original, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, original)
}

func TestS2Compressor_Empty(t *testing.T) {
	c := NewS2Compressor()

	compressed, err := c.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)

	original, err := c.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, original)
}

func TestLZ4Compressor_RoundTrip(t *testing.T) {
	c := NewLZ4Compressor()
	data := []byte("a record payload worth compressing, repeated repeated repeated")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	original, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, original)
}

func TestLZ4Compressor_Empty(t *testing.T) {
	c := NewLZ4Compressor()

	compressed, err := c.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)
}

func TestZstdCompressor_RoundTrip(t *testing.T) {
	c := NewZstdCompressor()
	data := []byte("a record payload worth compressing, repeated repeated repeated")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	original, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, original)
}

func TestCompressionStats_Ratio(t *testing.T) {
	s := CompressionStats{OriginalSize: 100, CompressedSize: 40}
	require.InDelta(t, 0.4, s.CompressionRatio(), 0.0001)
	require.InDelta(t, 60.0, s.SpaceSavings(), 0.0001)
}

func TestCompressionStats_ZeroOriginalSize(t *testing.T) {
	s := CompressionStats{OriginalSize: 0, CompressedSize: 0}
	require.Equal(t, 0.0, s.CompressionRatio())
}
