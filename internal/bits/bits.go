// Package bits provides the order-preserving bit transforms behind the digit codecs.
//
// Every transform maps a key's native bit pattern to an unsigned integer of
// the same width whose unsigned order equals the key's total order. Digits
// are then plain byte extractions of the transformed value.
package bits

// Digit returns byte i of v, where byte 0 is the least significant.
// Indices of 8 or more yield 0.
func Digit(v uint64, i int) uint8 {
	return uint8(v >> (uint(i) * 8))
}

// FlipSign toggles the sign bit of a two's-complement value that is width
// bytes wide. The result orders like the signed value when compared as
// unsigned. Bits above width*8 are left as they are; callers only extract
// digits below width.
func FlipSign(v uint64, width int) uint64 {
	return v ^ (1 << (uint(width)*8 - 1))
}

// Float32Key maps IEEE-754 binary32 bits to their total-order key.
// Negative values have all bits flipped, everything else only the sign bit.
// The resulting order is -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN.
func Float32Key(b uint32) uint32 {
	mask := uint32(int32(b)>>31) | 1<<31
	return b ^ mask
}

// Float64Key is Float32Key for binary64.
func Float64Key(b uint64) uint64 {
	mask := uint64(int64(b)>>63) | 1<<63
	return b ^ mask
}
