// Package helpers provides common byte and hex utility functions used across the codebase.
package helpers

// TruncateLeadingZeros removes leading 0x00 bytes from a slice.
// An all-zero slice truncates to empty.
func TruncateLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// Uint32ToBytes returns the minimal big-endian representation of x.
// Zero yields an empty slice.
func Uint32ToBytes(x uint32) []byte {
	return Uint64ToBytes(uint64(x))
}

// Uint64ToBytes returns the minimal big-endian representation of x.
// Zero yields an empty slice.
func Uint64ToBytes(x uint64) []byte {
	var buf [8]byte
	i := 8
	for x > 0 {
		i--
		buf[i] = byte(x & 0xff)
		x >>= 8
	}
	return append([]byte(nil), buf[i:]...)
}
