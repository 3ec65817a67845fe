// Package bits provides the bit helpers used to assemble CLA, INS and
// secrets-app flag bytes. Bits are numbered 1 (LSB) to 8 (MSB), the way
// ISO/IEC 7816-4 tables number them.
package bits

// Bit returns a byte with only the n-th bit set (1 to 8).
func Bit(n uint) byte {
	if n < 1 || n > 8 {
		return 0
	}
	return 1 << (n - 1)
}

// IsSet checks if the n-th bit is set (1 to 8).
func IsSet(b byte, n uint) bool {
	return b&Bit(n) != 0
}

// GetRange extracts the value held by bits high..low.
// Example: GetRange(0b0011_0001, 8, 5) returns 3.
func GetRange(b byte, high, low uint) byte {
	if high < low || high > 8 || low < 1 {
		return 0
	}

	width := high - low + 1
	mask := byte((1 << width) - 1)

	return (b >> (low - 1)) & mask
}

// Set returns b with bit n set.
func Set(b byte, n uint) byte {
	return b | Bit(n)
}

// Clear returns b with bit n cleared.
func Clear(b byte, n uint) byte {
	return b &^ Bit(n)
}

// SetIf sets bit n when cond holds and clears it otherwise.
func SetIf(b byte, n uint, cond bool) byte {
	if cond {
		return Set(b, n)
	}
	return Clear(b, n)
}
