// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package drbg implements three deterministic random bit generators modelled on
NIST SP 800-90A: a counter mode generator (CTR-DRBG), a hash based generator
(Hash-DRBG) and an HMAC based generator (HMAC-DRBG).

Every generator is built on primitives that live in this module: the SHA-256
engine in crypto/sha256, the HMAC construction in crypto/hmac256 and the
simplified substitution-permutation block cipher in crypto/spn.  Given the same
seed and the same sequence of requests, a generator always produces the same
output.

The generators do not acquire entropy.  Seeding is the caller's
responsibility, and none of the implementations provide prediction
resistance, side-channel resistance or constant time operation.  The counter
mode generator in particular is driven by a deliberately simplified cipher and
must not be treated as AES CTR-DRBG.

# Generators

All variants satisfy the Generator interface:

	g, err := drbg.New(drbg.KindHMAC, seed)
	if err != nil {
		// Only possible for an unknown kind.
	}
	out := g.Generate(256) // 32 bytes

A request for n bits returns ceil(n/8) bytes.  When n is not a multiple of 8,
the low-order bits of the final byte are generated bits beyond the requested
count and callers that need an exact bit count must ignore them.

Every call to Generate advances the internal state, including a request for
zero bits, which returns an empty slice.

# Concurrency

Generators are not safe for concurrent access.  Callers must either confine
an instance to a single goroutine or provide their own synchronization.
*/
package drbg
