// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drbg

import (
	"github.com/decred/drbg/crypto/spn"
	"github.com/decred/drbg/internal/bigendian"
)

const (
	// ctrSeedLen is the number of bytes produced by a counter mode state
	// update, which is enough to replace both the key and the counter.
	ctrSeedLen = spn.KeySize + spn.BlockSize

	// ctrUpdateBlocks is the number of cipher blocks needed to produce
	// ctrSeedLen bytes.
	ctrUpdateBlocks = (ctrSeedLen + spn.BlockSize - 1) / spn.BlockSize
)

// CounterDRBG is a counter mode deterministic random bit generator driven by
// the block cipher in the spn package.
//
// CounterDRBG is not safe for concurrent access.
type CounterDRBG struct {
	key           [spn.KeySize]byte
	counter       [spn.BlockSize]byte
	reseedCounter uint64
}

// NewCounterDRBG returns a counter mode generator seeded with seed.  The key
// and counter start at zero and the seed is mixed in with a state update.
func NewCounterDRBG(seed []byte) *CounterDRBG {
	g := &CounterDRBG{reseedCounter: 1}
	g.update(seed)
	return g
}

// nextBlock increments the counter and returns its encryption under the
// current key.
func (g *CounterDRBG) nextBlock() [spn.BlockSize]byte {
	bigendian.Increment(g.counter[:])
	return spn.Encrypt(&g.key, &g.counter)
}

// update derives a new key and counter from the cipher output, XORed with as
// much of providedData as fits.  Bytes of providedData beyond the combined key
// and counter length are ignored.
func (g *CounterDRBG) update(providedData []byte) {
	var temp [ctrUpdateBlocks * spn.BlockSize]byte
	for i := 0; i < ctrUpdateBlocks; i++ {
		block := g.nextBlock()
		copy(temp[i*spn.BlockSize:], block[:])
	}
	for i := 0; i < ctrSeedLen && i < len(providedData); i++ {
		temp[i] ^= providedData[i]
	}

	copy(g.key[:], temp[:spn.KeySize])
	copy(g.counter[:], temp[spn.KeySize:ctrSeedLen])
}

// Generate returns ceil(numBits/8) bytes of output and advances the state.
//
// This is part of the Generator interface implementation.
func (g *CounterDRBG) Generate(numBits uint) []byte {
	numBytes := bytesForBits(numBits)
	out := make([]byte, 0, numBytes+spn.BlockSize)
	for len(out) < numBytes {
		block := g.nextBlock()
		out = append(out, block[:]...)
	}
	out = out[:numBytes]

	g.update(nil)
	g.reseedCounter++
	return out
}

// Reseed mixes seed into the state and resets the reseed counter.
//
// This is part of the Generator interface implementation.
func (g *CounterDRBG) Reseed(seed []byte) {
	log.Tracef("Reseeding %s after %d requests", KindCTR, g.reseedCounter-1)
	g.update(seed)
	g.reseedCounter = 1
}

// Name returns "CTR-DRBG".
//
// This is part of the Generator interface implementation.
func (g *CounterDRBG) Name() string {
	return KindCTR.String()
}

// StateSize returns the size of the key, counter and reseed counter in bytes.
//
// This is part of the Generator interface implementation.
func (g *CounterDRBG) StateSize() int {
	return len(g.key) + len(g.counter) + 8
}

// Kind returns KindCTR.
//
// This is part of the Generator interface implementation.
func (g *CounterDRBG) Kind() Kind {
	return KindCTR
}

// reseedCount is part of the Generator interface implementation.
func (g *CounterDRBG) reseedCount() uint64 {
	return g.reseedCounter
}
