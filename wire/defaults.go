package wire

import "math"

// IsDefaultUint8 reports whether v is the natural default for a width-8
// unsigned integer: zero.
func IsDefaultUint8(v uint8) bool { return v == 0 }

func IsDefaultInt8(v int8) bool { return v == 0 }

func IsDefaultUint16(v uint16) bool { return v == 0 }

func IsDefaultInt16(v int16) bool { return v == 0 }

func IsDefaultUint32(v uint32) bool { return v == 0 }

func IsDefaultInt32(v int32) bool { return v == 0 }

func IsDefaultUint64(v uint64) bool { return v == 0 }

func IsDefaultInt64(v int64) bool { return v == 0 }

func IsDefaultUintptr(v uint64) bool { return v == 0 }

// IsDefaultFloat32 reports whether v is bit-equal to +0.0. Comparing
// via == would treat -0.0 as equal to +0.0 in Go and wrongly omit it;
// the bit pattern test ensures negative zero is never omitted.
func IsDefaultFloat32(v float32) bool { return math.Float32bits(v) == 0 }

// IsDefaultFloat64 is IsDefaultFloat32's 64-bit counterpart.
func IsDefaultFloat64(v float64) bool { return math.Float64bits(v) == 0 }

// IsDefaultBool reports whether v is false.
func IsDefaultBool(v bool) bool { return !v }

// IsDefaultRune reports whether v is U+0000.
func IsDefaultRune(v rune) bool { return v == 0 }

// IsDefaultString reports whether s is empty.
func IsDefaultString(s string) bool { return len(s) == 0 }
