// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hmac256 implements HMAC (RFC 2104) over the SHA-256 hash provided by
// the sibling sha256 package, restricted to 32-byte keys.
package hmac256

import (
	"github.com/decred/drbg/crypto/sha256"
)

const (
	// KeySize is the size of an HMAC key in bytes.
	KeySize = 32

	// Size is the size of an HMAC digest in bytes.
	Size = sha256.Size

	ipad = 0x36
	opad = 0x5c
)

// Sum returns HMAC-SHA256 of data under the provided key.
//
// The key is zero padded to the 64-byte hash block size and the result is
// H((key ^ opad) || H((key ^ ipad) || data)).
func Sum(key *[KeySize]byte, data []byte) [Size]byte {
	var inner, outer [sha256.BlockSize]byte
	copy(inner[:], key[:])
	copy(outer[:], key[:])
	for i := range inner {
		inner[i] ^= ipad
		outer[i] ^= opad
	}

	h := sha256.NewHasher()
	h.Write(inner[:])
	h.Write(data)
	innerSum := h.Sum256()

	h.Reset()
	h.Write(outer[:])
	h.Write(innerSum[:])
	return h.Sum256()
}
