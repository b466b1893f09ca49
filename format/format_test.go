package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tephrocactus/lbs-go/format"
)

func TestTypeTagString(t *testing.T) {
	require.Equal(t, "Uint32", format.TagUint32.String())
	require.Equal(t, "Record", format.TagRecord.String())
	require.Equal(t, "Unknown", format.TypeTag(0).String())
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "Zstd", format.CompressionZstd.String())
	require.Equal(t, "Unknown", format.CompressionType(0).String())
}
