// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drbg

import (
	"github.com/decred/drbg/crypto/hmac256"
)

// HMACDRBG is an HMAC based deterministic random bit generator using
// HMAC-SHA256.
//
// HMACDRBG is not safe for concurrent access.
type HMACDRBG struct {
	k             [hmac256.KeySize]byte
	v             [hmac256.Size]byte
	reseedCounter uint64
}

// NewHMACDRBG returns an HMAC based generator seeded with seed.  K starts as
// all zero bytes, V as all 0x01 bytes, and the seed is mixed in with a state
// update.
func NewHMACDRBG(seed []byte) *HMACDRBG {
	g := &HMACDRBG{reseedCounter: 1}
	for i := range g.v {
		g.v[i] = 0x01
	}
	g.update(seed)
	return g
}

// update mixes providedData into K and V.  The second round is only performed
// when providedData is not empty.
func (g *HMACDRBG) update(providedData []byte) {
	buf := make([]byte, 0, len(g.v)+1+len(providedData))
	buf = append(buf, g.v[:]...)
	buf = append(buf, 0x00)
	buf = append(buf, providedData...)
	g.k = hmac256.Sum(&g.k, buf)
	g.v = hmac256.Sum(&g.k, g.v[:])

	if len(providedData) == 0 {
		return
	}

	copy(buf, g.v[:])
	buf[len(g.v)] = 0x01
	g.k = hmac256.Sum(&g.k, buf)
	g.v = hmac256.Sum(&g.k, g.v[:])
}

// Generate returns ceil(numBits/8) bytes of output and advances the state.
//
// This is part of the Generator interface implementation.
func (g *HMACDRBG) Generate(numBits uint) []byte {
	numBytes := bytesForBits(numBits)
	out := make([]byte, 0, numBytes+hmac256.Size)
	for len(out) < numBytes {
		g.v = hmac256.Sum(&g.k, g.v[:])
		out = append(out, g.v[:]...)
	}
	out = out[:numBytes]

	g.update(nil)
	g.reseedCounter++
	return out
}

// Reseed mixes seed into the state and resets the reseed counter.
//
// This is part of the Generator interface implementation.
func (g *HMACDRBG) Reseed(seed []byte) {
	log.Tracef("Reseeding %s after %d requests", KindHMAC, g.reseedCounter-1)
	g.update(seed)
	g.reseedCounter = 1
}

// Name returns "HMAC-DRBG".
//
// This is part of the Generator interface implementation.
func (g *HMACDRBG) Name() string {
	return KindHMAC.String()
}

// StateSize returns the size of K, V and the reseed counter in bytes.
//
// This is part of the Generator interface implementation.
func (g *HMACDRBG) StateSize() int {
	return len(g.k) + len(g.v) + 8
}

// Kind returns KindHMAC.
//
// This is part of the Generator interface implementation.
func (g *HMACDRBG) Kind() Kind {
	return KindHMAC
}

// reseedCount is part of the Generator interface implementation.
func (g *HMACDRBG) reseedCount() uint64 {
	return g.reseedCounter
}
