// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha256

import (
	"encoding/binary"
	"math/bits"
)

// blocks runs the compression function over every full 64-byte block in msg
// and accumulates the result into h.  Any trailing partial block is ignored.
func blocks(h *[8]uint32, msg []byte) {
	var w [64]uint32
	for len(msg) >= BlockSize {
		// Message schedule.
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(msg[i*4:])
		}
		for i := 16; i < 64; i++ {
			v1 := w[i-2]
			gamma1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
			v2 := w[i-15]
			gamma0 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
			w[i] = gamma1 + w[i-7] + gamma0 + w[i-16]
		}

		a, b, c, d := h[0], h[1], h[2], h[3]
		e, f, g, hh := h[4], h[5], h[6], h[7]
		for i := 0; i < 64; i++ {
			sigma1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
			ch := (e & f) ^ (^e & g)
			t1 := hh + sigma1 + ch + k[i] + w[i]

			sigma0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := sigma0 + maj

			hh = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh

		msg = msg[BlockSize:]
	}
}
