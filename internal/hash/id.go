// Package hash provides the xxHash64 primitive used for schema
// fingerprinting (see record.Schema.Fingerprint and union.Schema.Fingerprint).
// It carries no wire-format meaning; lbs is not self-describing.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Combine folds an additional uint64 into a running hash using xxHash64's
// internal mixing via a fixed-width byte encoding. It is used to fold a
// sequence of (field ID, type tag) pairs into a single schema fingerprint
// without allocating an intermediate string per field.
func Combine(h uint64, v uint64) uint64 {
	var buf [16]byte
	buf[0] = byte(h)
	buf[1] = byte(h >> 8)
	buf[2] = byte(h >> 16)
	buf[3] = byte(h >> 24)
	buf[4] = byte(h >> 32)
	buf[5] = byte(h >> 40)
	buf[6] = byte(h >> 48)
	buf[7] = byte(h >> 56)
	buf[8] = byte(v)
	buf[9] = byte(v >> 8)
	buf[10] = byte(v >> 16)
	buf[11] = byte(v >> 24)
	buf[12] = byte(v >> 32)
	buf[13] = byte(v >> 40)
	buf[14] = byte(v >> 48)
	buf[15] = byte(v >> 56)

	return xxhash.Sum64(buf[:])
}
