package core

import "strconv"

// utoa converts an unsigned integer to a string without using fmt.
// Shared by the report and debug paths.
func utoa(n uint32) string {
	var buf [10]byte
	return string(appendUint(buf[:0], uint64(n)))
}

// appendUint appends the decimal form of n to dst
func appendUint(dst []byte, n uint64) []byte {
	if n == 0 {
		return append(dst, '0')
	}

	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	return append(dst, buf[pos:]...)
}

// formatFixed2 renders v with exactly two decimals, rounded the way "%.2f"
// rounds (correctly rounded, ties to even on the exact binary value).
func formatFixed2(v float64) string {
	var buf [24]byte
	return string(strconv.AppendFloat(buf[:0], v, 'f', 2, 64))
}
