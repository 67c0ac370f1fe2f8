// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drbg

import (
	"encoding/binary"

	"github.com/decred/drbg/crypto/sha256"
	"github.com/decred/drbg/internal/bigendian"
)

// hashSeedLen is the byte width of the V and C registers.  It is the 440-bit
// seedlen required for SHA-256.
const hashSeedLen = 55

// HashDRBG is a hash based deterministic random bit generator using SHA-256.
//
// HashDRBG is not safe for concurrent access.
type HashDRBG struct {
	v             [hashSeedLen]byte
	c             [hashSeedLen]byte
	reseedCounter uint64
}

// NewHashDRBG returns a hash based generator seeded with seed.
func NewHashDRBG(seed []byte) *HashDRBG {
	g := &HashDRBG{}
	hashDerive(g.v[:], seed)
	g.deriveC()
	g.reseedCounter = 1
	return g
}

// hashDerive fills out with the hash derivation function applied to the
// concatenation of inputs.  The requested bit count encoded into each hash is
// 8*len(out).
//
// Each 32-byte block is SHA-256(counter || bits || inputs...) where counter is
// a single byte starting at 1 and bits is a 32-bit big-endian integer.
func hashDerive(out []byte, inputs ...[]byte) {
	var prefix [5]byte
	prefix[0] = 1
	binary.BigEndian.PutUint32(prefix[1:], uint32(len(out))*8)

	h := sha256.NewHasher()
	for offset := 0; offset < len(out); offset += sha256.Size {
		h.Reset()
		h.Write(prefix[:])
		for _, input := range inputs {
			h.Write(input)
		}
		digest := h.Sum256()
		copy(out[offset:], digest[:])
		prefix[0]++
	}
}

// deriveC sets C from the current V.
func (g *HashDRBG) deriveC() {
	hashDerive(g.c[:], []byte{0x00}, g.v[:])
}

// hashGenerate returns numBytes of output produced by hashing successive
// values of a copy of V.
func (g *HashDRBG) hashGenerate(numBytes int) []byte {
	data := g.v
	out := make([]byte, 0, numBytes+sha256.Size)
	for len(out) < numBytes {
		digest := sha256.Sum256(data[:])
		out = append(out, digest[:]...)
		bigendian.Increment(data[:])
	}
	return out[:numBytes]
}

// Generate returns ceil(numBits/8) bytes of output and advances the state.
//
// The state advances as V = (V + SHA-256(0x03 || V) + C + reseedCounter) mod
// 2^440.
//
// This is part of the Generator interface implementation.
func (g *HashDRBG) Generate(numBits uint) []byte {
	out := g.hashGenerate(bytesForBits(numBits))

	h := sha256.NewHasher()
	h.WriteByte(0x03)
	h.Write(g.v[:])
	digest := h.Sum256()

	var counter [8]byte
	binary.BigEndian.PutUint64(counter[:], g.reseedCounter)
	bigendian.Add(g.v[:], digest[:])
	bigendian.Add(g.v[:], g.c[:])
	bigendian.Add(g.v[:], counter[:])
	g.reseedCounter++
	return out
}

// Reseed sets V from the derivation of 0x01 || V || seed, derives a new C and
// resets the reseed counter.
//
// This is part of the Generator interface implementation.
func (g *HashDRBG) Reseed(seed []byte) {
	log.Tracef("Reseeding %s after %d requests", KindHash, g.reseedCounter-1)
	var v [hashSeedLen]byte
	hashDerive(v[:], []byte{0x01}, g.v[:], seed)
	g.v = v
	g.deriveC()
	g.reseedCounter = 1
}

// Name returns "Hash-DRBG".
//
// This is part of the Generator interface implementation.
func (g *HashDRBG) Name() string {
	return KindHash.String()
}

// StateSize returns the size of V, C and the reseed counter in bytes.
//
// This is part of the Generator interface implementation.
func (g *HashDRBG) StateSize() int {
	return len(g.v) + len(g.c) + 8
}

// Kind returns KindHash.
//
// This is part of the Generator interface implementation.
func (g *HashDRBG) Kind() Kind {
	return KindHash
}

// reseedCount is part of the Generator interface implementation.
func (g *HashDRBG) reseedCount() uint64 {
	return g.reseedCounter
}
