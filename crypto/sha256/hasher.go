// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha256

import (
	"encoding/binary"
	"hash"
)

// Hasher provides an efficient rolling SHA-256 hash.  It implements the
// standard library hash.Hash interface.
//
// The zero value is not usable.  Use NewHasher to create one.
//
// A Hasher is not safe for concurrent access.
type Hasher struct {
	h   [8]uint32       // accumulated hash state
	buf [BlockSize]byte // pending bytes that do not yet fill a block
	nx  int             // number of pending bytes in buf
	len uint64          // total bytes written
}

// Ensure the hasher satisfies the standard library interface.
var _ hash.Hash = (*Hasher)(nil)

// NewHasher returns a new Hasher that is ready to accept data.
func NewHasher() *Hasher {
	var hasher Hasher
	hasher.Reset()
	return &hasher
}

// Reset resets the state of the hasher to its initial state.
//
// This is part of the hash.Hash interface.
func (h *Hasher) Reset() {
	h.h = iv
	h.nx = 0
	h.len = 0
}

// Size returns the number of bytes Sum will return.
//
// This is part of the hash.Hash interface.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize returns the underlying block size of the hash.
//
// This is part of the hash.Hash interface.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Write adds the provided data to the running hash.  It never returns an
// error.
//
// This is part of the io.Writer interface which hash.Hash embeds.
func (h *Hasher) Write(data []byte) (int, error) {
	n := len(data)
	h.len += uint64(n)

	// Fill and compress any pending partial block first.
	if h.nx > 0 {
		copied := copy(h.buf[h.nx:], data)
		h.nx += copied
		data = data[copied:]
		if h.nx < BlockSize {
			return n, nil
		}
		blocks(&h.h, h.buf[:])
		h.nx = 0
	}

	// Compress as many full blocks as possible straight from the input and
	// save the remainder for later.
	if len(data) >= BlockSize {
		full := len(data) &^ (BlockSize - 1)
		blocks(&h.h, data[:full])
		data = data[full:]
	}
	if len(data) > 0 {
		h.nx = copy(h.buf[:], data)
	}
	return n, nil
}

// WriteByte adds the provided byte to the running hash.
func (h *Hasher) WriteByte(b byte) error {
	h.Write([]byte{b})
	return nil
}

// finalize pads the message in a copy of the hasher and returns the final
// digest.  The receiver is not modified so more data may be written after.
func (h *Hasher) finalize() [Size]byte {
	final := *h

	// Padding is a single 1 bit (0x80), zeros until the length is 56 mod 64,
	// then the message length in bits as a 64-bit big-endian integer.
	var pad [BlockSize + 8]byte
	pad[0] = 0x80
	bitLen := final.len << 3
	padLen := BlockSize - 8 - int(final.len%BlockSize)
	if padLen <= 0 {
		padLen += BlockSize
	}
	binary.BigEndian.PutUint64(pad[padLen:], bitLen)
	final.Write(pad[:padLen+8])

	var digest [Size]byte
	for i, word := range final.h {
		binary.BigEndian.PutUint32(digest[i*4:], word)
	}
	return digest
}

// Sum256 returns the SHA-256 digest of the data written so far without
// modifying the hasher state.
func (h *Hasher) Sum256() [Size]byte {
	return h.finalize()
}

// Sum appends the current hash to b and returns the resulting slice.  It does
// not change the underlying hash state.
//
// This is part of the hash.Hash interface.
func (h *Hasher) Sum(b []byte) []byte {
	digest := h.finalize()
	return append(b, digest[:]...)
}

// Sum256 returns the SHA-256 digest of the provided data.
func Sum256(data []byte) [Size]byte {
	var h Hasher
	h.Reset()
	h.Write(data)
	return h.finalize()
}
