// Package lbs implements Lazy Binary Serialization: a compact binary
// codec optimized for large records where most fields carry their
// default value, so the wire encoding omits them entirely.
//
// # Core Features
//
//   - A primitive codec (package wire) for every scalar, textual,
//     temporal, network, and range type in the data model
//   - A composite codec (package value) for Optional, Box/Rc/Cow,
//     Sequence, Map, Set, and SmallVec
//   - A record envelope (package record) that omits default-valued
//     fields and rejects duplicate field IDs; rejecting an unknown field
//     ID is left to the caller's decode switch, as in the example below
//   - A tagged-union envelope (package union)
//   - Batch stream framing (package batch), with optional per-frame
//     compression (None, Zstd, S2, LZ4) and an xxHash64 checksum
//
// # Basic Usage
//
// Encoding a record by hand (standing in for generated Marshal code):
//
//	import (
//	    "github.com/tephrocactus/lbs-go/record"
//	    "github.com/tephrocactus/lbs-go/wire"
//	)
//
//	w := record.NewWriter()
//	w.WriteField(7, wire.IsDefaultUint32(count), func(w *wire.Writer) { w.WriteUint32(count) })
//	w.WriteField(3, wire.IsDefaultString(name), func(w *wire.Writer) { w.WriteString(name) })
//	data := w.Finish()
//
// Decoding it back:
//
//	it, err := record.NewFieldIterator(data)
//	for {
//	    id, ok, err := it.Next()
//	    if !ok {
//	        break
//	    }
//	    switch id {
//	    case 7:
//	        count, err = it.Reader().ReadUint32()
//	    case 3:
//	        name, err = it.Reader().ReadString()
//	    default:
//	        return errs.ErrUnknownFieldID
//	    }
//	}
//
// # Package Structure
//
// This package provides only documentation and a convenience xxHash64
// helper, FieldHash; the codec itself lives in wire, value, record,
// union, batch, and compress. Use those packages directly for anything
// beyond what FieldHash exposes here.
package lbs

import "github.com/tephrocactus/lbs-go/internal/hash"

// FieldHash computes the xxHash64 digest of name. It uses the same hash
// function that record.Schema.Fingerprint and union.Schema.Fingerprint
// fold (ID, type) descriptors with, but Fingerprint never hashes names,
// so FieldHash's result is unrelated to any fingerprint. It is exposed
// standalone for callers who want to hash a field or variant
// name into a stable identifier of their own (mirroring a metric name's
// hash-based identification in systems this codec's schemas often sit
// behind).
func FieldHash(name string) uint64 {
	return hash.ID(name)
}
