// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigendian

// Increment adds one to the big-endian integer in b, wrapping to zero when
// every byte overflows.
func Increment(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}

// Add sets dst to (dst + src) mod 2^(8*len(dst)) where both values are
// interpreted as big-endian unsigned integers.
//
// The addition proceeds from the least significant (rightmost) byte.  A src
// shorter than dst is treated as if it were zero-extended on the left, while
// only the low len(dst) bytes of a longer src contribute to the sum.
func Add(dst, src []byte) {
	var carry uint16
	si := len(src) - 1
	for di := len(dst) - 1; di >= 0; di-- {
		sum := uint16(dst[di]) + carry
		if si >= 0 {
			sum += uint16(src[si])
			si--
		}
		dst[di] = byte(sum)
		carry = sum >> 8
	}
}
