// Package compress provides compression codecs for lbs batch frames.
//
// # Overview
//
// The batch package optionally compresses each framed record before it
// is written to a stream, choosing among:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Selecting a codec
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, err := codec.Compress(recordBytes)
//	original, err := codec.Decompress(compressed)
//
// Zstd is split across two build-tagged files: zstd_cgo.go (cgo-backed
// github.com/valyala/gozstd, gated behind the nobuild tag, left off by
// default) and zstd_pure.go (pure-Go github.com/klauspost/compress/zstd,
// selected by the !nobuild build constraint). Any build without the
// nobuild tag, with or without cgo, resolves to the pure-Go
// implementation.
//
// # Thread safety
//
// Every codec implementation here is safe for concurrent use.
package compress
