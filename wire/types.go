// Package wire implements the primitive codec: one encode, decode, and
// skip method per scalar, textual, temporal, network, and range type,
// plus the default-predicate each obeys when embedded in a record field
// that omits its default value.
//
// All multi-byte values are little-endian, fixed-width, with no padding.
// Writer and Reader are not self-describing: a caller must know a
// value's type to read or skip it; the wire format carries no type
// tags of its own.
package wire

// Int128 represents a 128-bit signed integer as two 64-bit halves.
// Go has no native 128-bit integer type; Hi holds the high-order 64
// bits (sign-extended), Lo the low-order 64 bits.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128 represents a 128-bit unsigned integer as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether v is the zero value, the default for a
// 128-bit integer.
func (v Uint128) IsZero() bool { return v.Hi == 0 && v.Lo == 0 }

// IsZero reports whether v is the zero value.
func (v Int128) IsZero() bool { return v.Hi == 0 && v.Lo == 0 }

// Duration is an unsigned span of time: whole seconds plus sub-second
// nanoseconds.
type Duration struct {
	Secs  uint64
	Nanos uint32
}

// IsZero reports whether d is the zero duration, the only default value
// a duration field can omit for.
func (d Duration) IsZero() bool { return d.Secs == 0 && d.Nanos == 0 }

// Instant is a wall-clock instant relative to the Unix epoch. It is
// never omitted from a record regardless of value, so it has no
// exported IsZero/default predicate for record field use — the record
// framer simply always writes an Instant field's ID when present in a
// non-omit schema position.
type Instant struct {
	Secs  uint64
	Nanos uint32
}

// Timestamp is a calendar timestamp: signed seconds since the Unix epoch
// (negative values represent instants before 1970) plus sub-second
// nanoseconds. Like Instant, it is never omitted.
type Timestamp struct {
	Secs  int64
	Nanos uint32
}

// IPv4 is a 32-bit IPv4 address in network byte order (most significant
// octet first), matching net.IP's 4-byte form.
type IPv4 [4]byte

// IsZero reports whether addr is 0.0.0.0, the unspecified address and
// the default for IPv4.
func (addr IPv4) IsZero() bool { return addr == IPv4{} }

// IPv6 is a 128-bit IPv6 address in network byte order, matching
// net.IP's 16-byte form.
type IPv6 [16]byte

// IsZero reports whether addr is ::, the unspecified address and the
// default for IPv6.
func (addr IPv6) IsZero() bool { return addr == IPv6{} }

// IPAddr is the tagged union of an IPv4 or IPv6 address. Exactly one of
// V4/V6 is meaningful, selected by IsV4.
type IPAddr struct {
	IsV4 bool
	V4   IPv4
	V6   IPv6
}

// IsZero reports whether addr is the unspecified address of its family.
func (addr IPAddr) IsZero() bool {
	if addr.IsV4 {
		return addr.V4.IsZero()
	}

	return addr.V6.IsZero()
}

// IPNet is an address plus a prefix length.
type IPNet struct {
	Addr      IPAddr
	PrefixLen uint8
}

// IsZero reports whether n has the unspecified address, the default for
// an IP network.
func (n IPNet) IsZero() bool { return n.Addr.IsZero() }

// Range is an ordered pair (start, end) over a comparable scalar. Its
// default predicate is start == end, evaluated directly via Go's == on
// the comparable type parameter.
type Range[T comparable] struct {
	Start T
	End   T
}

// IsZero reports whether r.Start == r.End, the default for a range.
func (r Range[T]) IsZero() bool { return r.Start == r.End }
