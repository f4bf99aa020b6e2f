package radixsort

import (
	"math"
	"unsafe"

	"github.com/zeebo/xxh3"

	"github.com/tamirms/radixsort/internal/bits"
)

// Codec maps values of T to a fixed-length sequence of 8-bit digits whose
// lexicographic order, most significant digit first, is the total order the
// sort produces.
//
// Digits must return the same value for the lifetime of the codec. Digit(v, i)
// is only called with 0 <= i < Digits(), where digit 0 is the least
// significant. A codec that breaks either rule leaves the output order
// undefined; WithVerify detects such codecs in testing.
type Codec[T any] interface {
	Digits() int
	Digit(v T, i int) uint8
}

// UnsignedInteger is the set of unsigned integer types.
type UnsignedInteger interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// SignedInteger is the set of signed integer types.
type SignedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Floating is the set of IEEE-754 floating point types.
type Floating interface {
	~float32 | ~float64
}

// Unsigned is the codec for unsigned integers: digit i is byte i of the value.
type Unsigned[T UnsignedInteger] struct{}

// Digits returns the byte width of T.
func (Unsigned[T]) Digits() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Digit returns byte i of v.
func (Unsigned[T]) Digit(v T, i int) uint8 {
	return bits.Digit(uint64(v), i)
}

// Signed is the codec for two's-complement integers. The sign bit is flipped
// before digit extraction so that negative values order before positive ones.
type Signed[T SignedInteger] struct{}

// Digits returns the byte width of T.
func (Signed[T]) Digits() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Digit returns byte i of v with its sign bit flipped.
func (Signed[T]) Digit(v T, i int) uint8 {
	return bits.Digit(bits.FlipSign(uint64(v), int(unsafe.Sizeof(v))), i)
}

// Float is the codec for IEEE-754 values. It sorts by the total order of the
// bit patterns: negative NaNs, -Inf, negative values, -0, +0, positive
// values, +Inf, positive NaNs. This differs from IEEE comparison, under which
// NaN is unordered and -0 equals +0.
type Float[T Floating] struct{}

// Digits returns the byte width of T.
func (Float[T]) Digits() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Digit returns byte i of the total-order key of v.
func (Float[T]) Digit(v T, i int) uint8 {
	if unsafe.Sizeof(v) == 4 {
		return bits.Digit(uint64(bits.Float32Key(math.Float32bits(float32(v)))), i)
	}
	return bits.Digit(bits.Float64Key(math.Float64bits(float64(v))), i)
}

// Hash128 is the codec for 128-bit xxh3 hashes, ordered as unsigned 128-bit
// integers with Hi as the most significant half.
type Hash128 struct{}

// Digits returns 16.
func (Hash128) Digits() int { return 16 }

// Digit returns byte i of the 128-bit value.
func (Hash128) Digit(v xxh3.Uint128, i int) uint8 {
	if i < 8 {
		return bits.Digit(v.Lo, i)
	}
	return bits.Digit(v.Hi, i-8)
}
